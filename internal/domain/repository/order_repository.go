package repository

import (
	"context"

	"github.com/jhoicas/textile-market/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetByNumber(ctx context.Context, number string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, error)
}
