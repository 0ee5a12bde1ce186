package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
)

// CarouselUseCase imágenes del carrusel promocional.
type CarouselUseCase struct {
	repo  repository.CarouselRepository
	files repository.FileStorage
	log   zerolog.Logger
}

// NewCarouselUseCase construye el caso de uso.
func NewCarouselUseCase(repo repository.CarouselRepository, files repository.FileStorage, log zerolog.Logger) *CarouselUseCase {
	return &CarouselUseCase{repo: repo, files: files, log: log}
}

// List aplana las imágenes de todas las filas.
func (uc *CarouselUseCase) List(ctx context.Context) ([]dto.CarouselImageResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CarouselImageResponse, 0, len(rows))
	for _, img := range flattenCarousel(rows) {
		out = append(out, dto.CarouselImageResponse{URL: img.URL, RowID: img.RowID, ImageID: img.ImageID})
	}
	return out, nil
}

// Upload sube la imagen y crea la fila que la referencia.
func (uc *CarouselUseCase) Upload(ctx context.Context, image *dto.FileUpload) (*dto.CarouselImageResponse, error) {
	if image == nil {
		return nil, fmt.Errorf("%w: falta la imagen", domain.ErrInvalidInput)
	}
	stored, err := uc.files.Upload(ctx, image.Filename, image.Content)
	if err != nil {
		return nil, err
	}
	row := &entity.CarouselRow{ImageID: stored.ID, Images: []string{stored.ViewURL}}
	if err := uc.repo.Create(ctx, row); err != nil {
		if derr := uc.files.Delete(ctx, stored.ID); derr != nil {
			uc.log.Warn().Err(derr).Str("file_id", stored.ID).Msg("no se pudo eliminar imagen huérfana")
		}
		return nil, err
	}
	return &dto.CarouselImageResponse{URL: stored.ViewURL, RowID: row.ID, ImageID: stored.ID}, nil
}

// Delete borra la fila y después el archivo. El id del archivo sale de imageId o de la URL.
func (uc *CarouselUseCase) Delete(ctx context.Context, rowID string) error {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}
	var row *entity.CarouselRow
	for _, r := range rows {
		if r.ID == rowID {
			row = r
			break
		}
	}
	if row == nil {
		return domain.ErrNotFound
	}

	fileID := row.ImageID
	if fileID == "" && len(row.Images) > 0 {
		fileID = uc.files.FileIDFromURL(row.Images[0])
	}
	if err := uc.repo.Delete(ctx, rowID); err != nil {
		return err
	}
	if fileID == "" {
		uc.log.Warn().Str("row_id", rowID).Msg("fila del carrusel sin archivo asociado")
		return nil
	}
	if err := uc.files.Delete(ctx, fileID); err != nil {
		return fmt.Errorf("fila eliminada pero su imagen no: %w", err)
	}
	return nil
}

func flattenCarousel(rows []*entity.CarouselRow) []entity.CarouselImage {
	var out []entity.CarouselImage
	for _, r := range rows {
		for _, url := range r.Images {
			out = append(out, entity.CarouselImage{URL: url, RowID: r.ID, ImageID: r.ImageID})
		}
	}
	return out
}
