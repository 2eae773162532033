package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/textile-market/internal/application/usecase"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks en una transacción multi-documento (requiere replica set).
// Con transactions=false ejecuta fn sin sesión: cada escritura es atómica por separado.
type TxRunner struct {
	client       *mongo.Client
	transactions bool

	sequences *SequenceRepo
	inquiries *InquiryRepo
	orders    *OrderRepo
	reviews   *ReviewRepo
	products  *ProductRepo
}

// NewTxRunner construye el runner. Los repos usan el ctx de sesión que recibe fn.
func NewTxRunner(client *mongo.Client, db *mongo.Database, reg *bsoncodec.Registry, transactions bool) *TxRunner {
	return &TxRunner{
		client:       client,
		transactions: transactions,
		sequences:    NewSequenceRepository(db),
		inquiries:    NewInquiryRepository(db, reg),
		orders:       NewOrderRepository(db, reg),
		reviews:      NewReviewRepository(db, reg),
		products:     NewProductRepository(db, reg),
	}
}

// RunNumbered ejecuta fn con secuencias, consultas y pedidos en la misma transacción.
func (r *TxRunner) RunNumbered(ctx context.Context, fn func(
	ctx context.Context,
	seq repository.SequenceRepository,
	inquiryRepo repository.InquiryRepository,
	orderRepo repository.OrderRepository,
) error) error {
	return r.run(ctx, func(ctx context.Context) error {
		return fn(ctx, r.sequences, r.inquiries, r.orders)
	})
}

// RunReview ejecuta fn con reseñas y productos en la misma transacción.
func (r *TxRunner) RunReview(ctx context.Context, fn func(
	ctx context.Context,
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.run(ctx, func(ctx context.Context) error {
		return fn(ctx, r.reviews, r.products)
	})
}

func (r *TxRunner) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if !r.transactions {
		return fn(ctx)
	}
	sess, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
