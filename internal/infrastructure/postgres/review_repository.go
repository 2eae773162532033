package postgres

import (
	"context"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	t docTable[entity.Review]
}

// NewReviewRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{t: newDocTable[entity.Review](q, "reviews", domain.ErrDuplicate)}
}

func (r *ReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return r.t.insert(ctx, review.ID, review)
}

func (r *ReviewRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, error) {
	return r.t.find(ctx, map[string]any{"product_id": productID}, limit, offset)
}
