package repository

import (
	"context"

	"github.com/jhoicas/textile-market/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	// ListByParent lista hijas directas; parentID nil lista las raíces.
	ListByParent(ctx context.Context, parentID *string) ([]*entity.Category, error)
}
