package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes crea los índices de cada colección. CreateMany es idempotente para índices iguales.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"categories": {
			{Keys: bson.D{{Key: "slug", Value: 1}}},
			{Keys: bson.D{{Key: "parent_id", Value: 1}}},
		},
		"products": {
			{Keys: bson.D{{Key: "company_id", Value: 1}}},
			{Keys: bson.D{{Key: "category_id", Value: 1}}},
		},
		"inquiries": {
			{Keys: bson.D{{Key: "inquiry_number", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "buyer_id", Value: 1}}},
			{Keys: bson.D{{Key: "seller_id", Value: 1}}},
		},
		"orders": {
			{Keys: bson.D{{Key: "order_number", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "buyer_id", Value: 1}}},
		},
		"reviews": {
			{Keys: bson.D{{Key: "product_id", Value: 1}}},
		},
	}
	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("índices de %s: %w", name, err)
		}
	}
	return nil
}
