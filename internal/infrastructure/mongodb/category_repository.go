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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre MongoDB.
type CategoryRepo struct {
	c collection[entity.Category]
}

// NewCategoryRepository construye el adaptador sobre la colección categories.
func NewCategoryRepository(db *mongo.Database, reg *bsoncodec.Registry) *CategoryRepo {
	return &CategoryRepo{c: newCollection[entity.Category](db, reg, "categories", domain.ErrDuplicate)}
}

func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return r.c.insert(ctx, category)
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.c.findOne(ctx, bson.M{"_id": id})
}

func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return r.c.findOne(ctx, bson.M{"slug": slug})
}

func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	return r.c.replace(ctx, category.ID, category)
}

// ListByParent con parentID nil coincide con parent_id null (raíces).
func (r *CategoryRepo) ListByParent(ctx context.Context, parentID *string) ([]*entity.Category, error) {
	var filter bson.M
	if parentID == nil {
		filter = bson.M{"parent_id": nil}
	} else {
		filter = bson.M{"parent_id": *parentID}
	}
	return r.c.find(ctx, filter, 0, 0)
}
