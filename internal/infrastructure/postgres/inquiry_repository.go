package postgres

import (
	"context"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

// InquiryRepo implementación del puerto InquiryRepository sobre PostgreSQL.
// inquiry_number tiene índice único y Update conserva el valor almacenado.
type InquiryRepo struct {
	t docTable[entity.Inquiry]
}

// NewInquiryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInquiryRepository(q Querier) *InquiryRepo {
	return &InquiryRepo{t: newDocTable[entity.Inquiry](q, "inquiries", domain.ErrDuplicate, "inquiry_number")}
}

func (r *InquiryRepo) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	return r.t.insert(ctx, inquiry.ID, inquiry)
}

func (r *InquiryRepo) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	return r.t.getByID(ctx, id)
}

func (r *InquiryRepo) GetByNumber(ctx context.Context, number string) (*entity.Inquiry, error) {
	return r.t.findOne(ctx, map[string]any{"inquiry_number": number})
}

func (r *InquiryRepo) Update(ctx context.Context, inquiry *entity.Inquiry) error {
	return r.t.replace(ctx, inquiry.ID, inquiry)
}

func (r *InquiryRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Inquiry, error) {
	return r.t.find(ctx, map[string]any{"buyer_id": buyerID}, limit, offset)
}

func (r *InquiryRepo) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Inquiry, error) {
	return r.t.find(ctx, map[string]any{"seller_id": sellerID}, limit, offset)
}

// MarkClosed pasa la consulta a Closed con un UPDATE condicionado al estado actual.
func (r *InquiryRepo) MarkClosed(ctx context.Context, id string) error {
	return r.t.patch(ctx, id,
		`jsonb_set(doc, '{status}', to_jsonb($4::text))`,
		`doc->>'status' IS DISTINCT FROM $4`,
		entity.InquiryStatusClosed)
}
