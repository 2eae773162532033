package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contador por nombre en la colección sequences ({_id: nombre, value: n}).
type SequenceRepo struct {
	c *mongo.Collection
}

// NewSequenceRepository construye el adaptador.
func NewSequenceRepository(db *mongo.Database) *SequenceRepo {
	return &SequenceRepo{c: db.Collection("sequences")}
}

// Next incrementa con $inc (upsert) y devuelve el valor resultante.
func (r *SequenceRepo) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var out struct {
		Value int64 `bson:"value"`
	}
	err := r.c.FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"value": int64(1)}}, opts).Decode(&out)
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", name, err)
	}
	return out.Value, nil
}
