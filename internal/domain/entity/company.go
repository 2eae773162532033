package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tipos de negocio válidos para Company.
const (
	BusinessManufacturer = "Manufacturer"
	BusinessWholesaler   = "Wholesaler"
	BusinessRetailer     = "Retailer"
)

// Límites de Company.
const (
	MinEstablishedYear = 1800
	MaxCompanyRating   = 5
)

// ContactInfo datos de contacto comercial de la empresa.
type ContactInfo struct {
	ContactPerson string `bson:"contact_person" json:"contact_person" validate:"required"`
	PhoneNumber   string `bson:"phone_number" json:"phone_number" validate:"required,phone10"`
	Email         string `bson:"email" json:"email" validate:"required,email"`
	Website       string `bson:"website,omitempty" json:"website,omitempty" validate:"omitempty,url"`
}

// Company representa el perfil comercial de un vendedor textil.
// EstablishedYear se valida contra el año en curso al guardar.
type Company struct {
	ID                 string          `bson:"_id" json:"id"`
	Name               string          `bson:"name" json:"name" validate:"required"`
	Description        string          `bson:"description" json:"description"`
	BusinessType       string          `bson:"business_type" json:"business_type" validate:"required,oneof=Manufacturer Wholesaler Retailer"`
	EstablishedYear    int             `bson:"established_year" json:"established_year" validate:"required"`
	ProductionCapacity string          `bson:"production_capacity,omitempty" json:"production_capacity,omitempty"`
	Address            Address         `bson:"address" json:"address"`
	Categories         []string        `bson:"categories" json:"categories"`
	Rating             float64         `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	AnnualTurnover     decimal.Decimal `bson:"annual_turnover" json:"annual_turnover"`
	ContactInfo        ContactInfo     `bson:"contact_info" json:"contact_info"`
	NumberOfEmployees  int             `bson:"number_of_employees" json:"number_of_employees" validate:"gte=0"`
	IsVerified         bool            `bson:"is_verified" json:"is_verified"`
	Timestamps         `bson:",inline"`
}

// Trim normaliza los campos de texto recortables.
func (c *Company) Trim() {
	c.Name = strings.TrimSpace(c.Name)
	c.ContactInfo.PhoneNumber = strings.TrimSpace(c.ContactInfo.PhoneNumber)
	c.Address.Trim()
}
