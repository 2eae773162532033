package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContactInfoDTO contacto comercial.
type ContactInfoDTO struct {
	ContactPerson string `json:"contact_person"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email"`
	Website       string `json:"website,omitempty"`
}

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	BusinessType       string          `json:"business_type"`
	EstablishedYear    int             `json:"established_year"`
	ProductionCapacity string          `json:"production_capacity"`
	Address            AddressDTO      `json:"address"`
	Categories         []string        `json:"categories"`
	AnnualTurnover     decimal.Decimal `json:"annual_turnover"`
	ContactInfo        ContactInfoDTO  `json:"contact_info"`
	NumberOfEmployees  int             `json:"number_of_employees"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name               *string          `json:"name"`
	Description        *string          `json:"description"`
	BusinessType       *string          `json:"business_type"`
	EstablishedYear    *int             `json:"established_year"`
	ProductionCapacity *string          `json:"production_capacity"`
	Address            *AddressDTO      `json:"address"`
	Categories         []string         `json:"categories"`
	Rating             *float64         `json:"rating"`
	AnnualTurnover     *decimal.Decimal `json:"annual_turnover"`
	ContactInfo        *ContactInfoDTO  `json:"contact_info"`
	NumberOfEmployees  *int             `json:"number_of_employees"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	BusinessType       string          `json:"business_type"`
	EstablishedYear    int             `json:"established_year"`
	ProductionCapacity string          `json:"production_capacity,omitempty"`
	Address            AddressDTO      `json:"address"`
	Categories         []string        `json:"categories"`
	Rating             float64         `json:"rating"`
	AnnualTurnover     decimal.Decimal `json:"annual_turnover"`
	ContactInfo        ContactInfoDTO  `json:"contact_info"`
	NumberOfEmployees  int             `json:"number_of_employees"`
	IsVerified         bool            `json:"is_verified"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
