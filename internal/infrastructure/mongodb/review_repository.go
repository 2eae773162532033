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

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre MongoDB.
type ReviewRepo struct {
	c collection[entity.Review]
}

// NewReviewRepository construye el adaptador sobre la colección reviews.
func NewReviewRepository(db *mongo.Database, reg *bsoncodec.Registry) *ReviewRepo {
	return &ReviewRepo{c: newCollection[entity.Review](db, reg, "reviews", domain.ErrDuplicate)}
}

func (r *ReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return r.c.insert(ctx, review)
}

func (r *ReviewRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, error) {
	return r.c.find(ctx, bson.M{"product_id": productID}, limit, offset)
}
