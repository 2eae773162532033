package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/textile-market/internal/application/usecase"
	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var (
	_ usecase.TxRunner              = (*Store)(nil)
	_ repository.SequenceRepository = (*SequenceRepo)(nil)
)

// Store agrupa las tablas en memoria. Las transacciones se serializan con txMu y un
// error en fn restaura las tablas involucradas. Las escrituras sueltas sobre esas
// tablas también toman txMu, así una restauración nunca pisa un cambio ajeno.
type Store struct {
	txMu sync.Mutex

	Users      *UserRepo
	Companies  *CompanyRepo
	Categories *CategoryRepo
	Products   *ProductRepo
	Inquiries  *InquiryRepo
	Orders     *OrderRepo
	Reviews    *ReviewRepo
	Sequences  *SequenceRepo
}

// New crea un Store vacío.
func New() *Store {
	s := &Store{}
	g := gate{mu: &s.txMu}
	s.Users = &UserRepo{t: newTable[entity.User]("users", domain.ErrEmailAlreadyExists, []string{"email"})}
	s.Companies = &CompanyRepo{t: newTable[entity.Company]("companies", domain.ErrDuplicate, nil)}
	s.Categories = &CategoryRepo{t: newTable[entity.Category]("categories", domain.ErrDuplicate, nil)}
	s.Products = &ProductRepo{t: newTable[entity.Product]("products", domain.ErrDuplicate, nil, "review"), g: g}
	s.Inquiries = &InquiryRepo{t: newTable[entity.Inquiry]("inquiries", domain.ErrDuplicate, []string{"inquiry_number"}, "inquiry_number"), g: g}
	s.Orders = &OrderRepo{t: newTable[entity.Order]("orders", domain.ErrDuplicate, []string{"order_number"}, "order_number"), g: g}
	s.Reviews = &ReviewRepo{t: newTable[entity.Review]("reviews", domain.ErrDuplicate, nil), g: g}
	s.Sequences = &SequenceRepo{st: &sequenceState{values: make(map[string]int64)}, g: g}
	return s
}

// RunNumbered ejecuta fn; si falla, contador, consultas y pedidos vuelven a su estado previo.
func (s *Store) RunNumbered(ctx context.Context, fn func(
	ctx context.Context,
	seq repository.SequenceRepository,
	inquiryRepo repository.InquiryRepository,
	orderRepo repository.OrderRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	seqSnap := s.Sequences.snapshot()
	inqSnap := s.Inquiries.t.snapshot()
	ordSnap := s.Orders.t.snapshot()
	err := fn(ctx,
		&SequenceRepo{st: s.Sequences.st},
		&InquiryRepo{t: s.Inquiries.t},
		&OrderRepo{t: s.Orders.t},
	)
	if err != nil {
		s.Sequences.restore(seqSnap)
		s.Inquiries.t.restore(inqSnap)
		s.Orders.t.restore(ordSnap)
		return err
	}
	return nil
}

// RunReview ejecuta fn; si falla, reseñas y productos vuelven a su estado previo.
func (s *Store) RunReview(ctx context.Context, fn func(
	ctx context.Context,
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	revSnap := s.Reviews.t.snapshot()
	prodSnap := s.Products.t.snapshot()
	if err := fn(ctx, &ReviewRepo{t: s.Reviews.t}, &ProductRepo{t: s.Products.t}); err != nil {
		s.Reviews.t.restore(revSnap)
		s.Products.t.restore(prodSnap)
		return err
	}
	return nil
}

type sequenceState struct {
	mu     sync.Mutex
	values map[string]int64
}

// SequenceRepo contadores en memoria.
type SequenceRepo struct {
	st *sequenceState
	g  gate
}

// Next incrementa y devuelve el contador name.
func (r *SequenceRepo) Next(_ context.Context, name string) (int64, error) {
	defer r.g.enter()()
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.values[name]++
	return r.st.values[name], nil
}

func (r *SequenceRepo) snapshot() map[string]int64 {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	out := make(map[string]int64, len(r.st.values))
	for k, v := range r.st.values {
		out[k] = v
	}
	return out
}

func (r *SequenceRepo) restore(values map[string]int64) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.values = values
}
