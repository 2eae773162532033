package postgres

import (
	"context"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	t docTable[entity.Order]
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{t: newDocTable[entity.Order](q, "orders", domain.ErrDuplicate, "order_number")}
}

func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return r.t.insert(ctx, order.ID, order)
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.t.getByID(ctx, id)
}

func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (*entity.Order, error) {
	return r.t.findOne(ctx, map[string]any{"order_number": number})
}

func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	return r.t.replace(ctx, order.ID, order)
}

func (r *OrderRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, error) {
	return r.t.find(ctx, map[string]any{"buyer_id": buyerID}, limit, offset)
}
