package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una consulta.
const (
	InquiryStatusPending   = "Pending"
	InquiryStatusResponded = "Responded"
	InquiryStatusClosed    = "Closed"
)

// InquiryResponse mensaje dentro del hilo de negociación.
type InquiryResponse struct {
	SenderID  string    `bson:"sender_id" json:"sender_id" validate:"required"`
	Message   string    `bson:"message" json:"message" validate:"required"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Inquiry hilo de negociación comprador-vendedor sobre un producto.
// InquiryNumber se asigna al crear y no vuelve a cambiar.
type Inquiry struct {
	ID            string            `bson:"_id" json:"id"`
	InquiryNumber string            `bson:"inquiry_number" json:"inquiry_number" validate:"required"`
	BuyerID       string            `bson:"buyer_id" json:"buyer_id" validate:"required"`
	SellerID      string            `bson:"seller_id" json:"seller_id" validate:"required"`
	ProductID     string            `bson:"product_id" json:"product_id" validate:"required"`
	Quantity      int               `bson:"quantity" json:"quantity" validate:"gte=0"`
	TargetPrice   decimal.Decimal   `bson:"target_price" json:"target_price"`
	Message       string            `bson:"message" json:"message" validate:"required"`
	Status        string            `bson:"status" json:"status" validate:"required,oneof=Pending Responded Closed"`
	Responses     []InquiryResponse `bson:"responses" json:"responses" validate:"dive"`
	Timestamps    `bson:",inline"`
}
