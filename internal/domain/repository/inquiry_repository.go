package repository

import (
	"context"

	"github.com/jhoicas/textile-market/internal/domain/entity"
)

// InquiryRepository define el puerto de persistencia para Inquiry (DIP).
// Update nunca reescribe inquiry_number.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	GetByID(ctx context.Context, id string) (*entity.Inquiry, error)
	GetByNumber(ctx context.Context, number string) (*entity.Inquiry, error)
	Update(ctx context.Context, inquiry *entity.Inquiry) error
	// MarkClosed pasa la consulta a Closed solo si no lo estaba, en una escritura condicional.
	// Devuelve domain.ErrConflict si ya estaba cerrada y domain.ErrNotFound si no existe.
	MarkClosed(ctx context.Context, id string) error
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Inquiry, error)
	ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Inquiry, error)
}
