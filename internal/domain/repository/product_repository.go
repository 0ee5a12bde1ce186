package repository

import (
	"context"

	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// ProductQuery página de productos ordenada por id ascendente.
type ProductQuery struct {
	Search string // subcadena sobre el nombre del producto; vacío = sin filtro
	Offset int
	Limit  int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List(ctx context.Context, q ProductQuery) (products []*entity.Product, total int, err error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
