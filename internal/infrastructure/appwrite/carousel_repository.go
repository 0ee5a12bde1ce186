package appwrite

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
	"github.com/jhoicas/rasan-admin-api/pkg/jsontext"
)

var _ repository.CarouselRepository = (*CarouselRepo)(nil)

// CarouselRepo tabla del carrusel. El atributo image es un arreglo de URLs en texto JSON.
type CarouselRepo struct {
	tables  *Tables
	tableID string
	log     zerolog.Logger
}

// NewCarouselRepository construye el adaptador.
func NewCarouselRepository(tables *Tables, tableID string, log zerolog.Logger) *CarouselRepo {
	return &CarouselRepo{tables: tables, tableID: tableID, log: log}
}

// List devuelve las filas; una fila con image ilegible queda sin imágenes.
func (r *CarouselRepo) List(ctx context.Context) ([]*entity.CarouselRow, error) {
	list, err := r.tables.ListRows(ctx, r.tableID)
	if err != nil {
		return nil, fmt.Errorf("list carousel: %w", err)
	}
	rows, err := decodeRows[carouselRow](list.Rows)
	if err != nil {
		return nil, fmt.Errorf("list carousel: %w", err)
	}
	out := make([]*entity.CarouselRow, 0, len(rows))
	for _, row := range rows {
		c := &entity.CarouselRow{ID: row.ID, ImageID: row.ImageID}
		if err := jsontext.Decode(row.Image, &c.Images); err != nil {
			r.log.Warn().Err(err).Str("row_id", row.ID).Msg("image del carrusel inválido, se omite")
			c.Images = nil
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CarouselRepo) Create(ctx context.Context, row *entity.CarouselRow) error {
	if row.ID == "" {
		row.ID = uuid.New().String()
	}
	images := row.Images
	if images == nil {
		images = []string{}
	}
	encoded, err := jsontext.Encode(images)
	if err != nil {
		return fmt.Errorf("serializar image: %w", err)
	}
	_, err = r.tables.CreateRow(ctx, r.tableID, row.ID, map[string]any{
		"imageId": row.ImageID,
		"image":   encoded,
	})
	if err != nil {
		return fmt.Errorf("insert carousel: %w", err)
	}
	return nil
}

func (r *CarouselRepo) Delete(ctx context.Context, id string) error {
	if err := r.tables.DeleteRow(ctx, r.tableID, id); err != nil {
		return fmt.Errorf("delete carousel: %w", err)
	}
	return nil
}
