package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// La lista review solo la modifica AppendReview.
type ProductRepo struct {
	t docTable[entity.Product]
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{t: newDocTable[entity.Product](q, "products", domain.ErrDuplicate, "review")}
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return r.t.insert(ctx, product.ID, product)
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.t.getByID(ctx, id)
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return r.t.replace(ctx, product.ID, product)
}

func (r *ProductRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	return r.t.find(ctx, map[string]any{"company_id": companyID}, limit, offset)
}

func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Product, error) {
	return r.t.find(ctx, map[string]any{"category_id": categoryID}, limit, offset)
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

// AppendReview agrega reviewID al final de doc.review en un único UPDATE.
func (r *ProductRepo) AppendReview(ctx context.Context, productID, reviewID string) error {
	expr := `jsonb_set(doc, '{review}', (CASE jsonb_typeof(doc->'review') WHEN 'array' THEN doc->'review' ELSE '[]'::jsonb END) || to_jsonb($4::text))`
	return r.t.patch(ctx, productID, expr, "", reviewID)
}

// PriceSummary agrega sobre la columna NUMERIC price_per_unit (ver EnsureSchema).
func (r *ProductRepo) PriceSummary(ctx context.Context, categoryID string) (*entity.PriceSummary, error) {
	filter, err := json.Marshal(map[string]any{"category_id": categoryID})
	if err != nil {
		return nil, fmt.Errorf("encode products filter: %w", err)
	}
	var (
		count  int64
		lo, hi decimal.NullDecimal
	)
	err = r.t.q.QueryRow(ctx,
		`SELECT count(*), min(price_per_unit), max(price_per_unit) FROM products WHERE doc @> $1::jsonb`,
		filter).Scan(&count, &lo, &hi)
	if err != nil {
		return nil, fmt.Errorf("summary products: %w", err)
	}
	return &entity.PriceSummary{Count: count, Min: lo.Decimal, Max: hi.Decimal}, nil
}
