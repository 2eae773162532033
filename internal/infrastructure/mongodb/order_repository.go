package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre MongoDB.
type OrderRepo struct {
	c collection[entity.Order]
}

// NewOrderRepository construye el adaptador sobre la colección orders.
func NewOrderRepository(db *mongo.Database, reg *bsoncodec.Registry) *OrderRepo {
	return &OrderRepo{c: newCollection[entity.Order](db, reg, "orders", domain.ErrDuplicate, "order_number")}
}

func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return r.c.insert(ctx, order)
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.c.findOne(ctx, bson.M{"_id": id})
}

func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (*entity.Order, error) {
	return r.c.findOne(ctx, bson.M{"order_number": number})
}

func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	return r.c.replace(ctx, order.ID, order)
}

func (r *OrderRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, error) {
	return r.c.find(ctx, bson.M{"buyer_id": buyerID}, limit, offset)
}
