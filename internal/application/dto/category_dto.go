package dto

import "time"

// CategoryRequest entrada para crear o editar una categoría de producto.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// CategoryResponse salida de una categoría de producto.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	ImageURL    string    `json:"image_url"`
	ImageID     string    `json:"image_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// HeaderCategoryRequest agrega una categoría a la cabecera.
type HeaderCategoryRequest struct {
	CategoryID string `json:"category_id"`
}

// HeaderCategoryResponse categoría destacada.
type HeaderCategoryResponse struct {
	ID       string            `json:"id"`
	IsActive bool              `json:"is_active"`
	Category *CategoryResponse `json:"category,omitempty"`
}

// BodyCategoryRequest reemplaza las categorías de una sección.
type BodyCategoryRequest struct {
	CategoryIDs []string `json:"category_ids"`
}

// BodyCategoryResponse sección del cuerpo de la app.
type BodyCategoryResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Categories []CategoryResponse `json:"categories"`
}
