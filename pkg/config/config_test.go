package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, "textile_market", cfg.Mongo.Database)
	assert.True(t, cfg.Mongo.Transactions)
	assert.Equal(t, 10*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 0, cfg.Security.BcryptCost)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("MONGODB_TRANSACTIONS", "false")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.False(t, cfg.Mongo.Transactions)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")

	_, err := Load()
	assert.ErrorContains(t, err, "STORE_DRIVER")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "market", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/market?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
