package usecase

import (
	"context"

	"github.com/jhoicas/textile-market/internal/domain/repository"
)

// NumberingTxRunner ejecuta fn en una transacción que incluye el contador de secuencias,
// de modo que el incremento y la inserción del registro numerado se confirman juntos.
// fn debe usar el ctx recibido (en Mongo lleva la sesión de la transacción).
type NumberingTxRunner interface {
	RunNumbered(ctx context.Context, fn func(
		ctx context.Context,
		seq repository.SequenceRepository,
		inquiryRepo repository.InquiryRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// ReviewTxRunner ejecuta fn en una transacción con reseñas y productos
// (la reseña y su enlace en el producto se guardan juntos).
type ReviewTxRunner interface {
	RunReview(ctx context.Context, fn func(
		ctx context.Context,
		reviewRepo repository.ReviewRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// TxRunner reúne los runners transaccionales que implementa cada adaptador.
type TxRunner interface {
	NumberingTxRunner
	ReviewTxRunner
}
