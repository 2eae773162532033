package entity

import (
	"regexp"
	"strings"
)

// Address es un objeto de valor embebido (sin identidad propia).
type Address struct {
	Street   string `bson:"street" json:"street" validate:"required"`
	City     string `bson:"city" json:"city" validate:"required"`
	State    string `bson:"state" json:"state" validate:"required"`
	Pincode  string `bson:"pincode" json:"pincode" validate:"required,pincode"`
	Landmark string `bson:"landmark,omitempty" json:"landmark,omitempty"`
}

var nearPrefix = regexp.MustCompile(`(?i)^near\s+`)

// Trim normaliza espacios de todos los campos.
func (a *Address) Trim() {
	a.Street = strings.TrimSpace(a.Street)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.Pincode = strings.TrimSpace(a.Pincode)
	a.Landmark = strings.TrimSpace(a.Landmark)
}

// FullAddress arma la dirección legible. El prefijo "near" del punto de referencia
// se elimina y se vuelve a insertar como "Near".
func (a Address) FullAddress() string {
	var b strings.Builder
	b.WriteString(a.Street)
	b.WriteString(",\n")
	if landmark := strings.TrimSpace(nearPrefix.ReplaceAllString(strings.TrimSpace(a.Landmark), "")); landmark != "" {
		b.WriteString("Near ")
		b.WriteString(landmark)
		b.WriteString(",\n")
	}
	b.WriteString(a.City)
	b.WriteString(", ")
	b.WriteString(a.State)
	b.WriteString(" - ")
	b.WriteString(a.Pincode)
	return b.String()
}
