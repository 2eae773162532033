package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Unidades de venta.
const (
	UnitMeter = "meter"
	UnitKg    = "kg"
	UnitPiece = "piece"
)

// Disponibilidad del producto.
const (
	AvailabilityInStock    = "In Stock"
	AvailabilityOutOfStock = "Out of Stock"
)

// FabricTypes tipos de tela aceptados.
var FabricTypes = []string{"Cotton", "Polyester", "Silk", "Linen", "Wool", "Nylon", "Blended", "Denim", "Knit"}

// Sizes tallas aceptadas.
var Sizes = []string{"S", "M", "L", "XL"}

// PriceTier precio por volumen: desde MinQty unidades aplica Price.
type PriceTier struct {
	MinQty int             `bson:"min_qty" json:"min_qty" validate:"gte=0"`
	Price  decimal.Decimal `bson:"price" json:"price"`
}

// Product representa una entrada del catálogo de una empresa.
type Product struct {
	ID                   string          `bson:"_id" json:"id"`
	Name                 string          `bson:"name" json:"name" validate:"required"`
	Description          string          `bson:"description" json:"description" validate:"required"`
	SellerID             string          `bson:"seller_id,omitempty" json:"seller_id,omitempty"`
	CompanyID            string          `bson:"company_id" json:"company_id" validate:"required"`
	CategoryID           string          `bson:"category_id" json:"category_id" validate:"required"`
	FabricType           string          `bson:"fabric_type,omitempty" json:"fabric_type,omitempty" validate:"omitempty,oneof=Cotton Polyester Silk Linen Wool Nylon Blended Denim Knit"`
	GSM                  string          `bson:"gsm,omitempty" json:"gsm,omitempty"` // gramos por metro cuadrado
	Unit                 string          `bson:"unit,omitempty" json:"unit,omitempty" validate:"omitempty,oneof=meter kg piece"`
	PriceTiers           []PriceTier     `bson:"price_tiers" json:"price_tiers" validate:"dive"`
	ColorOptions         []string        `bson:"color_options" json:"color_options"`
	SizeOptions          []string        `bson:"size_options" json:"size_options" validate:"dive,oneof=S M L XL"`
	Stock                int             `bson:"stock" json:"stock" validate:"gte=0"`
	MinimumOrderQuantity int             `bson:"minimum_order_quantity" json:"minimum_order_quantity" validate:"gte=1"`
	PricePerUnit         decimal.Decimal `bson:"price_per_unit" json:"price_per_unit"`
	MinPrice             decimal.Decimal `bson:"min_price" json:"min_price"`
	MaxPrice             decimal.Decimal `bson:"max_price" json:"max_price"`
	Availability         string          `bson:"availability" json:"availability"`
	Images               []string        `bson:"images" json:"images" validate:"dive,url"`
	ReviewIDs            []string        `bson:"review" json:"review"`
	Timestamps           `bson:",inline"`
}

// PriceSummary resumen de price_per_unit sobre un conjunto de productos.
// Con Count == 0, Min y Max quedan en cero.
type PriceSummary struct {
	Count int64
	Min   decimal.Decimal
	Max   decimal.Decimal
}

// PriceRange rango de precios derivado "min-max" (no se persiste).
func (p *Product) PriceRange() string {
	return p.MinPrice.String() + "-" + p.MaxPrice.String()
}

// ApplyDefaults completa valores por defecto de un producto nuevo.
func (p *Product) ApplyDefaults() {
	if p.MinimumOrderQuantity == 0 {
		p.MinimumOrderQuantity = 1
	}
	if p.Availability == "" {
		p.Availability = AvailabilityInStock
	}
	if p.PriceTiers == nil {
		p.PriceTiers = []PriceTier{}
	}
	if p.ColorOptions == nil {
		p.ColorOptions = []string{}
	}
	if p.SizeOptions == nil {
		p.SizeOptions = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.ReviewIDs == nil {
		p.ReviewIDs = []string{}
	}
}

// Trim normaliza los campos de texto recortables.
func (p *Product) Trim() {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
}
