package repository

import (
	"context"

	"github.com/jhoicas/textile-market/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update nunca reescribe la lista review; solo AppendReview la modifica.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
	// AppendReview agrega reviewID a la lista review en una sola escritura. ErrNotFound si no existe.
	AppendReview(ctx context.Context, productID, reviewID string) error
	// PriceSummary cuenta los productos de la categoría y el mínimo/máximo de price_per_unit.
	PriceSummary(ctx context.Context, categoryID string) (*entity.PriceSummary, error)
}
