package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/textile-market/pkg/config"
)

const defaultTimeout = 10 * time.Second

// Connect abre el cliente con el registro de decimales y verifica la conexión.
// Devuelve la base configurada y el registro para codificar fuera del driver.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, *bsoncodec.Registry, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	reg := NewRegistry()
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetRegistry(reg).
		SetTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("conectar mongo: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(cfg.Database), reg, nil
}
