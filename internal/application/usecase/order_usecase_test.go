package usecase_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
)

func orderRequest() dto.CreateOrderRequest {
	addr := addressDTO()
	return dto.CreateOrderRequest{
		InquiryID: "inquiry-1",
		BuyerID:   "buyer-1",
		SellerID:  "seller-1",
		Items: []dto.OrderItemDTO{
			{ProductID: "p1", Quantity: 10, UnitPrice: *decPtr("12.5")},
			{ProductID: "p2", Quantity: 3, UnitPrice: *decPtr("100")},
		},
		ShippingAddress: &addr,
	}
}

func TestOrderUseCase_CreateNumeraYSuma(t *testing.T) {
	f := newFixture(t)

	first, err := f.uc.Orders.Create(f.ctx, orderRequest())
	require.NoError(t, err)
	assert.Equal(t, "ORD-000001", first.OrderNumber)
	assert.Equal(t, "425", first.TotalAmount.String())
	assert.Equal(t, entity.OrderStatusPending, first.Status)
	assert.Equal(t, entity.PaymentStatusPending, first.PaymentStatus)
	assert.Equal(t, "1 Mill Rd,\nSurat, Gujarat - 395001", first.ShippingAddress.FullAddress)

	in := orderRequest()
	in.TotalAmount = decPtr("400")
	second, err := f.uc.Orders.Create(f.ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "ORD-000002", second.OrderNumber)
	assert.Equal(t, "400", second.TotalAmount.String())

	got, err := f.uc.Orders.GetByNumber(f.ctx, "ORD-000002")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestOrderUseCase_CreateInvalido(t *testing.T) {
	f := newFixture(t)
	in := orderRequest()
	in.ShippingAddress = nil
	in.Items[0].Quantity = 0

	_, err := f.uc.Orders.Create(f.ctx, in)
	require.ErrorIs(t, err, domain.ErrValidation)
	requireFieldError(t, err, "shipping_address")
}

func TestOrderUseCase_Estados(t *testing.T) {
	f := newFixture(t)
	o, err := f.uc.Orders.Create(f.ctx, orderRequest())
	require.NoError(t, err)

	_, err = f.uc.Orders.UpdateStatus(f.ctx, o.ID, "Confirmed")
	requireFieldError(t, err, "status")

	done, err := f.uc.Orders.UpdateStatus(f.ctx, o.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, done.Status)
	assert.Equal(t, o.OrderNumber, done.OrderNumber)

	paid, err := f.uc.Orders.UpdatePaymentStatus(f.ctx, o.ID, entity.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, paid.PaymentStatus)

	_, err = f.uc.Orders.UpdatePaymentStatus(f.ctx, o.ID, "Refunded")
	requireFieldError(t, err, "payment_status")
}

func TestOrderUseCase_CreateFromInquiry(t *testing.T) {
	f := newFixture(t)
	inq, err := f.uc.Inquiries.Create(f.ctx, inquiryRequest())
	require.NoError(t, err)
	addr := addressDTO()

	order, err := f.uc.Orders.CreateFromInquiry(f.ctx, dto.CreateOrderFromInquiryRequest{
		InquiryID:       inq.ID,
		UnitPrice:       decPtr("115"),
		ShippingAddress: &addr,
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-000001", order.OrderNumber)
	assert.Equal(t, inq.ID, order.InquiryID)
	assert.Equal(t, "buyer-1", order.BuyerID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 500, order.Items[0].Quantity)
	assert.Equal(t, "57500", order.TotalAmount.String())

	closed, err := f.uc.Inquiries.GetByID(f.ctx, inq.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusClosed, closed.Status)

	_, err = f.uc.Orders.CreateFromInquiry(f.ctx, dto.CreateOrderFromInquiryRequest{InquiryID: inq.ID, ShippingAddress: &addr})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.Orders.CreateFromInquiry(f.ctx, dto.CreateOrderFromInquiryRequest{InquiryID: "missing", ShippingAddress: &addr})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderUseCase_CreateFromInquiryConcurrente(t *testing.T) {
	f := newFixture(t)
	inq, err := f.uc.Inquiries.Create(f.ctx, inquiryRequest())
	require.NoError(t, err)
	addr := addressDTO()

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Orders.CreateFromInquiry(f.ctx, dto.CreateOrderFromInquiryRequest{InquiryID: inq.ID, ShippingAddress: &addr})
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrConflict)
	}
	assert.Equal(t, 1, ok)

	list, err := f.uc.Orders.ListByBuyer(f.ctx, "buyer-1", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "ORD-000001", list.Items[0].OrderNumber)
}

func TestOrderUseCase_CreateFromInquiryInvalidoRevierte(t *testing.T) {
	f := newFixture(t)
	inq, err := f.uc.Inquiries.Create(f.ctx, inquiryRequest())
	require.NoError(t, err)

	_, err = f.uc.Orders.CreateFromInquiry(f.ctx, dto.CreateOrderFromInquiryRequest{InquiryID: inq.ID})
	requireFieldError(t, err, "shipping_address")

	still, err := f.uc.Inquiries.GetByID(f.ctx, inq.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusPending, still.Status)

	addr := addressDTO()
	order, err := f.uc.Orders.Create(f.ctx, dto.CreateOrderRequest{
		InquiryID: inq.ID, BuyerID: "buyer-1", SellerID: "seller-1",
		Items:           []dto.OrderItemDTO{{ProductID: "p1", Quantity: 1, UnitPrice: *decPtr("1")}},
		ShippingAddress: &addr,
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-000001", order.OrderNumber, "el intento fallido no consume número")
}

func TestOrderUseCase_ListByBuyer(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Orders.Create(f.ctx, orderRequest())
	require.NoError(t, err)
	_, err = f.uc.Orders.Create(f.ctx, orderRequest())
	require.NoError(t, err)

	list, err := f.uc.Orders.ListByBuyer(f.ctx, "buyer-1", dto.PageRequest{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "ORD-000002", list.Items[0].OrderNumber)
}
