package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/textile-market/internal/domain"
)

// stamped lo cumplen las entidades que embeben entity.Timestamps.
type stamped interface {
	Touch(now time.Time)
}

// collection operaciones comunes sobre una colección de documentos T.
// Los filtros son bson.M con los nombres de campo BSON.
type collection[T any] struct {
	c         *mongo.Collection
	reg       *bsoncodec.Registry
	immutable []string // campos que replace conserva del documento almacenado
	dup       error    // error ante clave duplicada
	now       func() time.Time
}

func newCollection[T any](db *mongo.Database, reg *bsoncodec.Registry, name string, dup error, immutable ...string) collection[T] {
	return collection[T]{
		c:         db.Collection(name),
		reg:       reg,
		immutable: append([]string{"created_at"}, immutable...),
		dup:       dup,
		now:       time.Now,
	}
}

func (c collection[T]) insert(ctx context.Context, doc stamped) error {
	doc.Touch(c.now())
	if _, err := c.c.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.dup
		}
		return fmt.Errorf("insert %s: %w", c.c.Name(), err)
	}
	return nil
}

// replaceAttempts reintentos de replace cuando un campo inmutable cambia entre la lectura y la escritura.
const replaceAttempts = 3

// replace reescribe el documento completo conservando los campos inmutables almacenados.
// Un campo ausente en doc (omitempty) queda eliminado. La escritura exige que los campos
// inmutables sigan iguales a los leídos; si otro escritor los cambió se vuelve a leer.
func (c collection[T]) replace(ctx context.Context, id string, doc stamped) error {
	doc.Touch(c.now())
	raw, err := bson.MarshalWithRegistry(c.reg, doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.c.Name(), err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("encode %s: %w", c.c.Name(), err)
	}

	projection := bson.M{}
	for _, key := range c.immutable {
		projection[key] = 1
	}
	for attempt := 0; attempt < replaceAttempts; attempt++ {
		var stored bson.M
		err = c.c.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(projection)).Decode(&stored)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", c.c.Name(), err)
		}
		filter := bson.M{"_id": id}
		for _, key := range c.immutable {
			if v, ok := stored[key]; ok {
				fields[key] = v
				filter[key] = v
			} else {
				delete(fields, key)
				filter[key] = bson.M{"$exists": false}
			}
		}

		res, err := c.c.ReplaceOne(ctx, filter, fields)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return c.dup
			}
			return fmt.Errorf("update %s: %w", c.c.Name(), err)
		}
		if res.MatchedCount > 0 {
			return nil
		}
	}
	return fmt.Errorf("update %s %s: %w", c.c.Name(), id, domain.ErrConflict)
}

// patch aplica update al documento id si además cumple cond, y renueva updated_at.
// update es un pipeline de agregación. Sin coincidencia devuelve domain.ErrNotFound si
// el documento no existe y domain.ErrConflict si existe pero no cumple cond.
func (c collection[T]) patch(ctx context.Context, id string, cond bson.M, update mongo.Pipeline) error {
	filter := bson.M{"_id": id}
	for k, v := range cond {
		filter[k] = v
	}
	stages := append(mongo.Pipeline{}, update...)
	stages = append(stages, bson.D{{Key: "$set", Value: bson.M{"updated_at": c.now().UTC()}}})

	res, err := c.c.UpdateOne(ctx, filter, stages)
	if err != nil {
		return fmt.Errorf("update %s: %w", c.c.Name(), err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	n, err := c.c.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("get %s: %w", c.c.Name(), err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

func (c collection[T]) delete(ctx context.Context, id string) error {
	res, err := c.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.c.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// findOne devuelve nil, nil si no hay coincidencias.
func (c collection[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	var v T
	if err := c.c.FindOne(ctx, filter, opts).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", c.c.Name(), err)
	}
	return &v, nil
}

// find lista en orden de creación. limit <= 0 no limita.
func (c collection[T]) find(ctx context.Context, filter bson.M, limit, offset int) ([]*T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit)).SetSkip(int64(offset))
	}
	cur, err := c.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.c.Name(), err)
	}
	defer cur.Close(ctx)

	var list []*T
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.c.Name(), err)
	}
	return list, nil
}
