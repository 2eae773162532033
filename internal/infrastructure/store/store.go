// Package store arma los repositorios del driver configurado (mongo, postgres o memory).
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/textile-market/internal/application/usecase"
	"github.com/jhoicas/textile-market/internal/domain/repository"
	"github.com/jhoicas/textile-market/internal/infrastructure/memory"
	"github.com/jhoicas/textile-market/internal/infrastructure/mongodb"
	"github.com/jhoicas/textile-market/internal/infrastructure/postgres"
	"github.com/jhoicas/textile-market/pkg/config"
	"github.com/jhoicas/textile-market/pkg/logger"
)

// Store es el handle de persistencia: se crea en main y se pasa explícitamente.
type Store struct {
	Driver string

	Users      repository.UserRepository
	Companies  repository.CompanyRepository
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Inquiries  repository.InquiryRepository
	Orders     repository.OrderRepository
	Reviews    repository.ReviewRepository
	Tx         usecase.TxRunner

	ensure func(ctx context.Context) error
	close  func(ctx context.Context) error
}

// Open conecta con el driver de cfg.Store.Driver.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Store, error) {
	log = log.Component("store")
	switch cfg.Store.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg.Mongo, log)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg.DB, log)
	case config.DriverMemory:
		log.Info().Msg("usando almacenamiento en memoria")
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Store.Driver)
	}
}

// NewMemory crea un Store en memoria (tests y ejecuciones locales).
func NewMemory() *Store {
	m := memory.New()
	return &Store{
		Driver:     config.DriverMemory,
		Users:      m.Users,
		Companies:  m.Companies,
		Categories: m.Categories,
		Products:   m.Products,
		Inquiries:  m.Inquiries,
		Orders:     m.Orders,
		Reviews:    m.Reviews,
		Tx:         m,
		ensure:     func(context.Context) error { return nil },
		close:      func(context.Context) error { return nil },
	}
}

func openMongo(ctx context.Context, cfg config.MongoConfig, log *logger.Logger) (*Store, error) {
	client, db, reg, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.Database).Bool("transactions", cfg.Transactions).Msg("conectado a MongoDB")
	if !cfg.Transactions {
		log.Warn().Msg("transacciones deshabilitadas: un alta fallida deja un hueco en la numeración")
	}
	return &Store{
		Driver:     config.DriverMongo,
		Users:      mongodb.NewUserRepository(db, reg),
		Companies:  mongodb.NewCompanyRepository(db, reg),
		Categories: mongodb.NewCategoryRepository(db, reg),
		Products:   mongodb.NewProductRepository(db, reg),
		Inquiries:  mongodb.NewInquiryRepository(db, reg),
		Orders:     mongodb.NewOrderRepository(db, reg),
		Reviews:    mongodb.NewReviewRepository(db, reg),
		Tx:         mongodb.NewTxRunner(client, db, reg, cfg.Transactions),
		ensure: func(ctx context.Context) error {
			return mongodb.EnsureIndexes(ctx, db)
		},
		close: func(ctx context.Context) error {
			log.Info().Msg("desconectando MongoDB")
			return client.Disconnect(ctx)
		},
	}, nil
}

func openPostgres(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.DBName).Msg("conectado a PostgreSQL")
	return &Store{
		Driver:     config.DriverPostgres,
		Users:      postgres.NewUserRepository(pool),
		Companies:  postgres.NewCompanyRepository(pool),
		Categories: postgres.NewCategoryRepository(pool),
		Products:   postgres.NewProductRepository(pool),
		Inquiries:  postgres.NewInquiryRepository(pool),
		Orders:     postgres.NewOrderRepository(pool),
		Reviews:    postgres.NewReviewRepository(pool),
		Tx:         postgres.NewTxRunner(pool),
		ensure: func(ctx context.Context) error {
			return postgres.EnsureSchema(ctx, pool)
		},
		close: func(context.Context) error {
			log.Info().Msg("cerrando pool PostgreSQL")
			pool.Close()
			return nil
		},
	}, nil
}

// EnsureSchema crea índices (mongo) o tablas e índices (postgres). Idempotente.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return s.ensure(ctx)
}

// Close libera la conexión.
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}

// UseCases construye los casos de uso sobre este Store.
func (s *Store) UseCases(log *logger.Logger, bcryptCost int) *usecase.Module {
	return &usecase.Module{
		Users:      usecase.NewUserUseCase(s.Users, log, bcryptCost),
		Companies:  usecase.NewCompanyUseCase(s.Companies, log),
		Categories: usecase.NewCategoryUseCase(s.Categories, log),
		Products:   usecase.NewProductUseCase(s.Products),
		Inquiries:  usecase.NewInquiryUseCase(s.Inquiries, s.Tx, log),
		Orders:     usecase.NewOrderUseCase(s.Orders, s.Tx, log),
		Reviews:    usecase.NewReviewUseCase(s.Reviews, s.Tx),
	}
}
