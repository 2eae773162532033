package dto

import "time"

// CreateReviewRequest entrada para publicar una reseña.
type CreateReviewRequest struct {
	Review    string `json:"review"`
	Rating    int    `json:"rating"`
	ProductID string `json:"product_id"`
	UserID    string `json:"user_id"`
}

// ReviewResponse salida de una reseña.
type ReviewResponse struct {
	ID        string    `json:"id"`
	Review    string    `json:"review"`
	Rating    int       `json:"rating"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
