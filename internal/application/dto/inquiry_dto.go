package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInquiryRequest entrada para abrir una consulta. Quantity y TargetPrice son obligatorios.
type CreateInquiryRequest struct {
	BuyerID     string           `json:"buyer_id"`
	SellerID    string           `json:"seller_id"`
	ProductID   string           `json:"product_id"`
	Quantity    *int             `json:"quantity"`
	TargetPrice *decimal.Decimal `json:"target_price"`
	Message     string           `json:"message"`
}

// AddInquiryResponseRequest mensaje a anexar al hilo.
type AddInquiryResponseRequest struct {
	SenderID string `json:"sender_id"`
	Message  string `json:"message"`
}

// InquiryResponseDTO mensaje del hilo.
type InquiryResponseDTO struct {
	SenderID  string    `json:"sender_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// InquiryResponse salida de una consulta.
type InquiryResponse struct {
	ID            string               `json:"id"`
	InquiryNumber string               `json:"inquiry_number"`
	BuyerID       string               `json:"buyer_id"`
	SellerID      string               `json:"seller_id"`
	ProductID     string               `json:"product_id"`
	Quantity      int                  `json:"quantity"`
	TargetPrice   decimal.Decimal      `json:"target_price"`
	Message       string               `json:"message"`
	Status        string               `json:"status"`
	Responses     []InquiryResponseDTO `json:"responses"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// InquiryListResponse lista paginada de consultas.
type InquiryListResponse struct {
	Items []InquiryResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
