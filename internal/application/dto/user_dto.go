package dto

import "time"

// CreateUserRequest entrada para registrar un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Role           string  `json:"role"` // vacío = Buyer
	PhoneNumber    string  `json:"phone_number"`
	CompanyID      *string `json:"company_id"`
	IsCompanyOwner *bool   `json:"is_company_owner"`
}

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
// Al cambiar de rol fuera de Seller, company_id e is_company_owner se eliminan.
type UpdateUserRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	Role           *string `json:"role"`
	PhoneNumber    *string `json:"phone_number"`
	CompanyID      *string `json:"company_id"`
	IsCompanyOwner *bool   `json:"is_company_owner"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	CompanyID      *string   `json:"company_id,omitempty"`
	IsCompanyOwner *bool     `json:"is_company_owner,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
