package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
	"github.com/jhoicas/textile-market/internal/domain/validation"
	"github.com/jhoicas/textile-market/pkg/logger"
)

// InquiryUseCase casos de uso de consultas comprador-vendedor.
type InquiryUseCase struct {
	repo repository.InquiryRepository
	tx   NumberingTxRunner
	log  *logger.Logger
	now  func() time.Time
}

// NewInquiryUseCase construye el caso de uso. tx numera y guarda en una misma transacción.
func NewInquiryUseCase(repo repository.InquiryRepository, tx NumberingTxRunner, log *logger.Logger) *InquiryUseCase {
	return &InquiryUseCase{repo: repo, tx: tx, log: log.Component("inquiries"), now: time.Now}
}

// Create abre una consulta en estado Pending y le asigna el siguiente INQ-NNNNNN.
func (uc *InquiryUseCase) Create(ctx context.Context, in dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	var errs validation.Errors
	if in.Quantity == nil {
		errs = append(errs, validation.FieldError{Field: "quantity", Kind: validation.KindRequired, Message: "es requerido"})
	}
	if in.TargetPrice == nil {
		errs = append(errs, validation.FieldError{Field: "target_price", Kind: validation.KindRequired, Message: "es requerido"})
	}
	inquiry := &entity.Inquiry{
		ID:            uuid.New().String(),
		InquiryNumber: entity.FormatNumber(entity.InquiryNumberPrefix, 0),
		BuyerID:       strings.TrimSpace(in.BuyerID),
		SellerID:      strings.TrimSpace(in.SellerID),
		ProductID:     strings.TrimSpace(in.ProductID),
		Message:       strings.TrimSpace(in.Message),
		Status:        entity.InquiryStatusPending,
		Responses:     []entity.InquiryResponse{},
	}
	if in.Quantity != nil {
		inquiry.Quantity = *in.Quantity
	}
	if in.TargetPrice != nil {
		inquiry.TargetPrice = *in.TargetPrice
	}
	if err := validation.Merge(errs, validation.Inquiry(inquiry)); err != nil {
		return nil, err
	}

	err := uc.tx.RunNumbered(ctx, func(ctx context.Context, seq repository.SequenceRepository, inquiryRepo repository.InquiryRepository, _ repository.OrderRepository) error {
		n, err := seq.Next(ctx, entity.InquirySequence)
		if err != nil {
			return err
		}
		inquiry.InquiryNumber = entity.FormatNumber(entity.InquiryNumberPrefix, n)
		return inquiryRepo.Create(ctx, inquiry)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("inquiry_id", inquiry.ID).Str("inquiry_number", inquiry.InquiryNumber).Msg("consulta creada")
	return toInquiryResponse(inquiry), nil
}

// AddResponse agrega un mensaje al hilo. Solo comprador o vendedor pueden responder;
// la primera respuesta del vendedor pasa la consulta a Responded.
// Devuelve domain.ErrConflict si la consulta está cerrada.
func (uc *InquiryUseCase) AddResponse(ctx context.Context, id string, in dto.AddInquiryResponseRequest) (*dto.InquiryResponse, error) {
	inquiry, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry.Status == entity.InquiryStatusClosed {
		return nil, domain.ErrConflict
	}
	sender := strings.TrimSpace(in.SenderID)
	if sender != "" && sender != inquiry.BuyerID && sender != inquiry.SellerID {
		return nil, domain.ErrInvalidInput
	}
	inquiry.Responses = append(inquiry.Responses, entity.InquiryResponse{
		SenderID:  sender,
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: uc.now().UTC(),
	})
	if sender == inquiry.SellerID && inquiry.Status == entity.InquiryStatusPending {
		inquiry.Status = entity.InquiryStatusResponded
	}
	if err := validation.Inquiry(inquiry); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, inquiry); err != nil {
		return nil, err
	}
	return toInquiryResponse(inquiry), nil
}

// UpdateStatus cambia el estado de la consulta (Pending, Responded, Closed).
func (uc *InquiryUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.InquiryResponse, error) {
	inquiry, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	inquiry.Status = strings.TrimSpace(status)
	if err := validation.Inquiry(inquiry); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, inquiry); err != nil {
		return nil, err
	}
	return toInquiryResponse(inquiry), nil
}

// GetByID obtiene una consulta por ID.
func (uc *InquiryUseCase) GetByID(ctx context.Context, id string) (*dto.InquiryResponse, error) {
	inquiry, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInquiryResponse(inquiry), nil
}

// GetByNumber obtiene una consulta por su número INQ-NNNNNN.
func (uc *InquiryUseCase) GetByNumber(ctx context.Context, number string) (*dto.InquiryResponse, error) {
	inquiry, err := uc.repo.GetByNumber(ctx, strings.TrimSpace(number))
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, domain.ErrNotFound
	}
	return toInquiryResponse(inquiry), nil
}

// ListByBuyer lista las consultas de un comprador.
func (uc *InquiryUseCase) ListByBuyer(ctx context.Context, buyerID string, page dto.PageRequest) (*dto.InquiryListResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.ListByBuyer(ctx, buyerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toInquiryList(list, page), nil
}

// ListBySeller lista las consultas dirigidas a un vendedor.
func (uc *InquiryUseCase) ListBySeller(ctx context.Context, sellerID string, page dto.PageRequest) (*dto.InquiryListResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.ListBySeller(ctx, sellerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toInquiryList(list, page), nil
}

func (uc *InquiryUseCase) get(ctx context.Context, id string) (*entity.Inquiry, error) {
	inquiry, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, domain.ErrNotFound
	}
	return inquiry, nil
}

func toInquiryList(list []*entity.Inquiry, page dto.PageRequest) *dto.InquiryListResponse {
	items := make([]dto.InquiryResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInquiryResponse(i))
	}
	return &dto.InquiryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
