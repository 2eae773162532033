package entity

// Categorías raíz del catálogo textil: son las únicas sin padre.
var RootCategories = []string{
	"Raw Fibers",
	"Yarn & Threads",
	"Fabric",
	"Apparel - Men",
	"Apparel - Women",
	"Kids & Baby Wear",
	"Home Textile",
	"Hosiery & Innerwear",
	"Fashion Accessories & Trims",
	"Technical & Industrial Textile",
}

// IsRootCategory informa si name es exactamente una de las categorías raíz.
func IsRootCategory(name string) bool {
	for _, root := range RootCategories {
		if root == name {
			return true
		}
	}
	return false
}

// Category representa una categoría del catálogo (árbol por ParentID).
// Slug se deriva de Name y no se puede asignar manualmente.
type Category struct {
	ID          string  `bson:"_id" json:"id"`
	Name        string  `bson:"name" json:"name" validate:"required"`
	Slug        string  `bson:"slug" json:"slug"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	ParentID    *string `bson:"parent_id" json:"parent_id"` // nil si es raíz
	Timestamps  `bson:",inline"`
}

// IsRoot informa si la categoría no tiene padre.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
