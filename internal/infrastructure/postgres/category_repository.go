package postgres

import (
	"context"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	t docTable[entity.Category]
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{t: newDocTable[entity.Category](q, "categories", domain.ErrDuplicate)}
}

func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return r.t.insert(ctx, category.ID, category)
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.t.getByID(ctx, id)
}

// GetBySlug devuelve la primera categoría creada con ese slug.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return r.t.findOne(ctx, map[string]any{"slug": slug})
}

func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	return r.t.replace(ctx, category.ID, category)
}

// ListByParent usa {"parent_id": null} para las raíces.
func (r *CategoryRepo) ListByParent(ctx context.Context, parentID *string) ([]*entity.Category, error) {
	return r.t.find(ctx, map[string]any{"parent_id": parentID}, 0, 0)
}
