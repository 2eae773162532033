package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemDTO línea del pedido.
type OrderItemDTO struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para crear un pedido. TotalAmount vacío = suma de líneas.
type CreateOrderRequest struct {
	InquiryID       string           `json:"inquiry_id"`
	BuyerID         string           `json:"buyer_id"`
	SellerID        string           `json:"seller_id"`
	Items           []OrderItemDTO   `json:"items"`
	TotalAmount     *decimal.Decimal `json:"total_amount"`
	ShippingAddress *AddressDTO      `json:"shipping_address"`
}

// CreateOrderFromInquiryRequest entrada para convertir una consulta en pedido.
// Quantity y UnitPrice vacíos toman la cantidad y el precio objetivo de la consulta.
type CreateOrderFromInquiryRequest struct {
	InquiryID       string           `json:"inquiry_id"`
	Quantity        *int             `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	ShippingAddress *AddressDTO      `json:"shipping_address"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	InquiryID       string          `json:"inquiry_id"`
	BuyerID         string          `json:"buyer_id"`
	SellerID        string          `json:"seller_id"`
	Items           []OrderItemDTO  `json:"items"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	ShippingAddress AddressDTO      `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
