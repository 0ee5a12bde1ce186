package repository

import (
	"context"

	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// List devuelve las categorías ordenadas por creación descendente.
	List(ctx context.Context, limit int) ([]*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	// SetActive escribe isActive y devuelve la categoría tal como quedó en el backend.
	SetActive(ctx context.Context, id string, active bool) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}

// HeaderCategoryRepository puerto para las categorías de cabecera.
type HeaderCategoryRepository interface {
	List(ctx context.Context, limit int) ([]*entity.HeaderCategory, error)
	Create(ctx context.Context, categoryID string) (*entity.HeaderCategory, error)
	SetActive(ctx context.Context, id string, active bool) (*entity.HeaderCategory, error)
	Delete(ctx context.Context, id string) error
}

// BodyCategoryRepository puerto para las secciones del cuerpo.
type BodyCategoryRepository interface {
	List(ctx context.Context, limit int) ([]*entity.BodyCategory, error)
	SetProductCategories(ctx context.Context, id string, categoryIDs []string) (*entity.BodyCategory, error)
}
