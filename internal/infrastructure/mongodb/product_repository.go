package mongodb

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre MongoDB.
// La lista review solo la modifica AppendReview.
type ProductRepo struct {
	c collection[entity.Product]
}

// NewProductRepository construye el adaptador sobre la colección products.
func NewProductRepository(db *mongo.Database, reg *bsoncodec.Registry) *ProductRepo {
	return &ProductRepo{c: newCollection[entity.Product](db, reg, "products", domain.ErrDuplicate, "review")}
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return r.c.insert(ctx, product)
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.c.findOne(ctx, bson.M{"_id": id})
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return r.c.replace(ctx, product.ID, product)
}

func (r *ProductRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	return r.c.find(ctx, bson.M{"company_id": companyID}, limit, offset)
}

func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Product, error) {
	return r.c.find(ctx, bson.M{"category_id": categoryID}, limit, offset)
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}

// AppendReview agrega reviewID al final de la lista review con una sola actualización.
func (r *ProductRepo) AppendReview(ctx context.Context, productID, reviewID string) error {
	return r.c.patch(ctx, productID, nil, mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"review": bson.M{"$concatArrays": bson.A{bson.M{"$ifNull": bson.A{"$review", bson.A{}}}, bson.A{reviewID}}},
		}}},
	})
}

// PriceSummary agrega en el servidor; price_per_unit se guarda como Decimal128.
func (r *ProductRepo) PriceSummary(ctx context.Context, categoryID string) (*entity.PriceSummary, error) {
	cur, err := r.c.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"category_id": categoryID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"count": bson.M{"$sum": 1},
			"min":   bson.M{"$min": "$price_per_unit"},
			"max":   bson.M{"$max": "$price_per_unit"},
		}}},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate products: %w", err)
	}
	defer cur.Close(ctx)

	summary := &entity.PriceSummary{}
	if !cur.Next(ctx) {
		return summary, cur.Err()
	}
	var row struct {
		Count int64           `bson:"count"`
		Min   decimal.Decimal `bson:"min"`
		Max   decimal.Decimal `bson:"max"`
	}
	if err := bson.UnmarshalWithRegistry(r.c.reg, cur.Current, &row); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	summary.Count, summary.Min, summary.Max = row.Count, row.Min, row.Max
	return summary, nil
}
