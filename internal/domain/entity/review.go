package entity

// Límites de calificación de una reseña.
const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// Review reseña de un usuario sobre un producto.
type Review struct {
	ID         string `bson:"_id" json:"id"`
	Review     string `bson:"review" json:"review" validate:"required"`
	Rating     int    `bson:"rating" json:"rating" validate:"gte=1,lte=5"`
	ProductID  string `bson:"product_id" json:"product_id" validate:"required"`
	UserID     string `bson:"user_id" json:"user_id" validate:"required"`
	Timestamps `bson:",inline"`
}
