package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
)

// categoryListLimit tope de filas al listar categorías (la consola las muestra todas).
const categoryListLimit = 1000

// CategoryUseCase casos de uso de categorías de producto.
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	files repository.FileStorage
	log   zerolog.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, files repository.FileStorage, log zerolog.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, files: files, log: log}
}

// List devuelve las categorías, más recientes primero.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx, categoryListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Create sube la imagen (obligatoria) y crea la categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest, image *dto.FileUpload) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: falta name", domain.ErrInvalidInput)
	}
	if image == nil {
		return nil, fmt.Errorf("%w: la imagen de la categoría es obligatoria", domain.ErrInvalidInput)
	}
	stored, err := uc.files.Upload(ctx, image.Filename, image.Content)
	if err != nil {
		return nil, err
	}
	category := &entity.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		IsActive:    true,
		ImageURL:    stored.ViewURL,
		ImageID:     stored.ID,
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		uc.discardFile(ctx, stored.ID)
		return nil, err
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// Update cambia nombre y descripción; con imagen nueva reemplaza la anterior.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest, image *dto.FileUpload) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: falta name", domain.ErrInvalidInput)
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	oldImageID := ""
	if image != nil {
		stored, err := uc.files.Upload(ctx, image.Filename, image.Content)
		if err != nil {
			return nil, err
		}
		oldImageID = category.ImageID
		category.ImageURL, category.ImageID = stored.ViewURL, stored.ID
	}
	category.Name = strings.TrimSpace(in.Name)
	category.Description = strings.TrimSpace(in.Description)
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}

	if err := uc.repo.Update(ctx, category); err != nil {
		if image != nil {
			uc.discardFile(ctx, category.ImageID)
		}
		return nil, err
	}
	if oldImageID != "" {
		uc.discardFile(ctx, oldImageID)
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// ToggleActive invierte isActive. La respuesta refleja lo que devolvió Appwrite.
func (uc *CategoryUseCase) ToggleActive(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	updated, err := uc.repo.SetActive(ctx, id, !category.IsActive)
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(updated)
	return &out, nil
}

// Delete elimina primero la imagen y luego la fila; si la imagen falla la fila se conserva.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if category.ImageID != "" {
		if err := uc.files.Delete(ctx, category.ImageID); err != nil {
			return err
		}
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CategoryUseCase) discardFile(ctx context.Context, fileID string) {
	if err := uc.files.Delete(ctx, fileID); err != nil {
		uc.log.Warn().Err(err).Str("file_id", fileID).Msg("no se pudo eliminar imagen huérfana")
	}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		ImageURL:    c.ImageURL,
		ImageID:     c.ImageID,
		CreatedAt:   c.CreatedAt,
	}
}
