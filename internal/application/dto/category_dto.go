package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
// Slug se deriva del nombre; enviarlo con valor provoca error de validación.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug,omitempty"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
// ClearParent convierte la categoría en raíz (ParentID nil no modifica el padre).
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ParentID    *string `json:"parent_id"`
	ClearParent bool    `json:"clear_parent"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	ParentID    *string   `json:"parent_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
