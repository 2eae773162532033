package entity

import "github.com/shopspring/decimal"

// Estados de un pedido. Confirmed no forma parte del conjunto persistido.
const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// Estados de pago.
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// OrderItem línea del pedido.
type OrderItem struct {
	ProductID string          `bson:"product_id" json:"product_id" validate:"required"`
	Quantity  int             `bson:"quantity" json:"quantity" validate:"gt=0"`
	UnitPrice decimal.Decimal `bson:"unit_price" json:"unit_price"`
}

// Order pedido derivado de una consulta.
type Order struct {
	ID              string          `bson:"_id" json:"id"`
	OrderNumber     string          `bson:"order_number" json:"order_number" validate:"required"`
	InquiryID       string          `bson:"inquiry_id" json:"inquiry_id" validate:"required"`
	BuyerID         string          `bson:"buyer_id" json:"buyer_id" validate:"required"`
	SellerID        string          `bson:"seller_id" json:"seller_id" validate:"required"`
	Items           []OrderItem     `bson:"items" json:"items" validate:"dive"`
	TotalAmount     decimal.Decimal `bson:"total_amount" json:"total_amount"`
	Status          string          `bson:"status" json:"status" validate:"required,oneof=Pending Completed Cancelled"`
	PaymentStatus   string          `bson:"payment_status" json:"payment_status" validate:"required,oneof=Pending Paid Failed"`
	ShippingAddress Address         `bson:"shipping_address" json:"shipping_address"`
	Timestamps      `bson:",inline"`
}
