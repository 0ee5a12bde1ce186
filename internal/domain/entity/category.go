package entity

import "time"

// Category categoría de productos (tabla product category en Appwrite).
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	ImageURL    string
	ImageID     string
	CreatedAt   time.Time
}

// HeaderCategory categoría destacada en la cabecera de la app; apunta a una Category.
type HeaderCategory struct {
	ID              string
	IsActive        bool
	ProductCategory *Category // nil si la relación quedó huérfana
}

// CategoryID devuelve el id de la categoría relacionada o vacío.
func (h *HeaderCategory) CategoryID() string {
	if h.ProductCategory == nil {
		return ""
	}
	return h.ProductCategory.ID
}

// BodyCategory sección del cuerpo de la app que agrupa varias categorías.
type BodyCategory struct {
	ID                string
	Name              string
	ProductCategories []Category
}

// CategoryIDs ids de las categorías agrupadas.
func (b *BodyCategory) CategoryIDs() []string {
	ids := make([]string, 0, len(b.ProductCategories))
	for _, c := range b.ProductCategories {
		ids = append(ids, c.ID)
	}
	return ids
}
