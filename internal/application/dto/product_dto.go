package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceTierDTO precio por volumen.
type PriceTierDTO struct {
	MinQty int             `json:"min_qty"`
	Price  decimal.Decimal `json:"price"`
}

// CreateProductRequest entrada para crear un producto. PricePerUnit es obligatorio.
type CreateProductRequest struct {
	Name                 string           `json:"name"`
	Description          string           `json:"description"`
	SellerID             string           `json:"seller_id"`
	CompanyID            string           `json:"company_id"`
	CategoryID           string           `json:"category_id"`
	FabricType           string           `json:"fabric_type"`
	GSM                  string           `json:"gsm"`
	Unit                 string           `json:"unit"`
	PriceTiers           []PriceTierDTO   `json:"price_tiers"`
	ColorOptions         []string         `json:"color_options"`
	SizeOptions          []string         `json:"size_options"`
	Stock                int              `json:"stock"`
	MinimumOrderQuantity int              `json:"minimum_order_quantity"`
	PricePerUnit         *decimal.Decimal `json:"price_per_unit"`
	MinPrice             decimal.Decimal  `json:"min_price"`
	MaxPrice             decimal.Decimal  `json:"max_price"`
	Availability         string           `json:"availability"`
	Images               []string         `json:"images"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name                 *string          `json:"name"`
	Description          *string          `json:"description"`
	CategoryID           *string          `json:"category_id"`
	FabricType           *string          `json:"fabric_type"`
	GSM                  *string          `json:"gsm"`
	Unit                 *string          `json:"unit"`
	PriceTiers           []PriceTierDTO   `json:"price_tiers"`
	ColorOptions         []string         `json:"color_options"`
	SizeOptions          []string         `json:"size_options"`
	Stock                *int             `json:"stock"`
	MinimumOrderQuantity *int             `json:"minimum_order_quantity"`
	PricePerUnit         *decimal.Decimal `json:"price_per_unit"`
	MinPrice             *decimal.Decimal `json:"min_price"`
	MaxPrice             *decimal.Decimal `json:"max_price"`
	Availability         *string          `json:"availability"`
	Images               []string         `json:"images"`
}

// ProductResponse salida de un producto con el rango de precios derivado.
type ProductResponse struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	SellerID             string          `json:"seller_id,omitempty"`
	CompanyID            string          `json:"company_id"`
	CategoryID           string          `json:"category_id"`
	FabricType           string          `json:"fabric_type,omitempty"`
	GSM                  string          `json:"gsm,omitempty"`
	Unit                 string          `json:"unit,omitempty"`
	PriceTiers           []PriceTierDTO  `json:"price_tiers"`
	ColorOptions         []string        `json:"color_options"`
	SizeOptions          []string        `json:"size_options"`
	Stock                int             `json:"stock"`
	MinimumOrderQuantity int             `json:"minimum_order_quantity"`
	PricePerUnit         decimal.Decimal `json:"price_per_unit"`
	MinPrice             decimal.Decimal `json:"min_price"`
	MaxPrice             decimal.Decimal `json:"max_price"`
	PriceRange           string          `json:"price_range"`
	Availability         string          `json:"availability"`
	Images               []string        `json:"images"`
	Reviews              []string        `json:"review"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PriceSummaryResponse precios unitarios de los productos de una categoría.
type PriceSummaryResponse struct {
	CategoryID string          `json:"category_id"`
	Count      int64           `json:"count"`
	MinPrice   decimal.Decimal `json:"min_price"`
	MaxPrice   decimal.Decimal `json:"max_price"`
}
