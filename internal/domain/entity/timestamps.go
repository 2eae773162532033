package entity

import "time"

// Timestamps son las marcas de creación/actualización que mantiene la capa de persistencia.
type Timestamps struct {
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Touch fija CreatedAt si está vacío y actualiza UpdatedAt.
func (t *Timestamps) Touch(now time.Time) {
	now = now.UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}
