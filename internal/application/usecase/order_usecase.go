package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
	"github.com/jhoicas/textile-market/internal/domain/validation"
	"github.com/jhoicas/textile-market/pkg/logger"
)

// OrderUseCase casos de uso de pedidos.
type OrderUseCase struct {
	repo repository.OrderRepository
	tx   NumberingTxRunner
	log  *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, tx NumberingTxRunner, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{repo: repo, tx: tx, log: log.Component("orders")}
}

// Create crea un pedido Pending/Pending con el siguiente ORD-NNNNNN.
// Sin TotalAmount se usa la suma de cantidad * precio unitario de las líneas.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	order, errs := newOrder(strings.TrimSpace(in.InquiryID), strings.TrimSpace(in.BuyerID), strings.TrimSpace(in.SellerID), toOrderItems(in.Items), in.TotalAmount, in.ShippingAddress)
	if err := validation.Merge(errs, validation.Order(order)); err != nil {
		return nil, err
	}
	err := uc.tx.RunNumbered(ctx, func(ctx context.Context, seq repository.SequenceRepository, _ repository.InquiryRepository, orderRepo repository.OrderRepository) error {
		return insertNumberedOrder(ctx, seq, orderRepo, order)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("order_id", order.ID).Str("order_number", order.OrderNumber).Msg("pedido creado")
	return toOrderResponse(order), nil
}

// CreateFromInquiry convierte una consulta abierta en pedido y la cierra en la misma transacción.
// Comprador, vendedor y producto salen de la consulta; cantidad y precio objetivo se pueden sobrescribir.
// Devuelve domain.ErrConflict si la consulta ya está cerrada.
func (uc *OrderUseCase) CreateFromInquiry(ctx context.Context, in dto.CreateOrderFromInquiryRequest) (*dto.OrderResponse, error) {
	inquiryID := strings.TrimSpace(in.InquiryID)
	if inquiryID == "" {
		return nil, validation.Errors{{Field: "inquiry_id", Kind: validation.KindRequired, Message: "es requerido"}}
	}
	var order *entity.Order
	err := uc.tx.RunNumbered(ctx, func(ctx context.Context, seq repository.SequenceRepository, inquiryRepo repository.InquiryRepository, orderRepo repository.OrderRepository) error {
		inquiry, err := inquiryRepo.GetByID(ctx, inquiryID)
		if err != nil {
			return err
		}
		if inquiry == nil {
			return domain.ErrNotFound
		}
		if inquiry.Status == entity.InquiryStatusClosed {
			return domain.ErrConflict
		}

		item := entity.OrderItem{ProductID: inquiry.ProductID, Quantity: inquiry.Quantity, UnitPrice: inquiry.TargetPrice}
		if in.Quantity != nil {
			item.Quantity = *in.Quantity
		}
		if in.UnitPrice != nil {
			item.UnitPrice = *in.UnitPrice
		}
		var errs validation.Errors
		order, errs = newOrder(inquiry.ID, inquiry.BuyerID, inquiry.SellerID, []entity.OrderItem{item}, nil, in.ShippingAddress)
		if err := validation.Merge(errs, validation.Order(order)); err != nil {
			return err
		}

		// el cierre es condicional: de dos conversiones concurrentes solo una lo logra
		if err := inquiryRepo.MarkClosed(ctx, inquiry.ID); err != nil {
			return err
		}
		return insertNumberedOrder(ctx, seq, orderRepo, order)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("order_id", order.ID).Str("order_number", order.OrderNumber).Str("inquiry_id", inquiryID).Msg("pedido creado desde consulta")
	return toOrderResponse(order), nil
}

// UpdateStatus cambia el estado del pedido (Pending, Completed, Cancelled).
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	return uc.update(ctx, id, func(o *entity.Order) { o.Status = strings.TrimSpace(status) })
}

// UpdatePaymentStatus cambia el estado de pago (Pending, Paid, Failed).
func (uc *OrderUseCase) UpdatePaymentStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	return uc.update(ctx, id, func(o *entity.Order) { o.PaymentStatus = strings.TrimSpace(status) })
}

// GetByID obtiene un pedido por ID.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByNumber obtiene un pedido por su número ORD-NNNNNN.
func (uc *OrderUseCase) GetByNumber(ctx context.Context, number string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByNumber(ctx, strings.TrimSpace(number))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// ListByBuyer lista los pedidos de un comprador.
func (uc *OrderUseCase) ListByBuyer(ctx context.Context, buyerID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.ListByBuyer(ctx, buyerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *OrderUseCase) update(ctx context.Context, id string, apply func(*entity.Order)) (*dto.OrderResponse, error) {
	order, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(order)
	if err := validation.Order(order); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func (uc *OrderUseCase) get(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// newOrder arma un pedido con número provisional; el definitivo se asigna dentro de la transacción.
func newOrder(inquiryID, buyerID, sellerID string, items []entity.OrderItem, total *decimal.Decimal, shipping *dto.AddressDTO) (*entity.Order, validation.Errors) {
	var errs validation.Errors
	order := &entity.Order{
		ID:            uuid.New().String(),
		OrderNumber:   entity.FormatNumber(entity.OrderNumberPrefix, 0),
		InquiryID:     inquiryID,
		BuyerID:       buyerID,
		SellerID:      sellerID,
		Items:         items,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}
	if total != nil {
		order.TotalAmount = *total
	} else {
		order.TotalAmount = sumItems(items)
	}
	if shipping == nil {
		errs = append(errs, validation.FieldError{Field: "shipping_address", Kind: validation.KindRequired, Message: "es requerido"})
	} else {
		order.ShippingAddress = toAddress(*shipping)
	}
	return order, errs
}

func insertNumberedOrder(ctx context.Context, seq repository.SequenceRepository, orderRepo repository.OrderRepository, order *entity.Order) error {
	n, err := seq.Next(ctx, entity.OrderSequence)
	if err != nil {
		return err
	}
	order.OrderNumber = entity.FormatNumber(entity.OrderNumberPrefix, n)
	return orderRepo.Create(ctx, order)
}

func toOrderItems(in []dto.OrderItemDTO) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.OrderItem{ProductID: strings.TrimSpace(it.ProductID), Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return out
}

func sumItems(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
