package repository

import (
	"context"

	"github.com/jhoicas/textile-market/internal/domain/entity"
)

// ReviewRepository define el puerto de persistencia para Review (DIP).
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, error)
}
