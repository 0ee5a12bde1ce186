package repository

import (
	"context"

	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// CarouselRepository puerto para las filas del carrusel promocional.
type CarouselRepository interface {
	List(ctx context.Context) ([]*entity.CarouselRow, error)
	Create(ctx context.Context, row *entity.CarouselRow) error
	Delete(ctx context.Context, id string) error
}
