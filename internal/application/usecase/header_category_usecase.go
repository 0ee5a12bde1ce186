package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
)

// HeaderCategoryUseCase categorías destacadas en la cabecera de la app.
type HeaderCategoryUseCase struct {
	headers    repository.HeaderCategoryRepository
	categories repository.CategoryRepository
}

// NewHeaderCategoryUseCase construye el caso de uso.
func NewHeaderCategoryUseCase(headers repository.HeaderCategoryRepository, categories repository.CategoryRepository) *HeaderCategoryUseCase {
	return &HeaderCategoryUseCase{headers: headers, categories: categories}
}

// List devuelve las categorías de cabecera con su categoría de producto.
func (uc *HeaderCategoryUseCase) List(ctx context.Context) ([]dto.HeaderCategoryResponse, error) {
	list, err := uc.headers.List(ctx, categoryListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HeaderCategoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, toHeaderCategoryResponse(h))
	}
	return out, nil
}

// Available categorías de producto que aún no están en la cabecera, filtradas por nombre.
func (uc *HeaderCategoryUseCase) Available(ctx context.Context, search string) ([]dto.CategoryResponse, error) {
	headers, err := uc.headers.List(ctx, categoryListLimit)
	if err != nil {
		return nil, err
	}
	used := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		if id := h.CategoryID(); id != "" {
			used[id] = struct{}{}
		}
	}

	categories, err := uc.categories.List(ctx, categoryListLimit)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		if _, ok := used[c.ID]; ok {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(c.Name), term) {
			continue
		}
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Create agrega una categoría a la cabecera (activa). Rechaza duplicados.
func (uc *HeaderCategoryUseCase) Create(ctx context.Context, in dto.HeaderCategoryRequest) (*dto.HeaderCategoryResponse, error) {
	categoryID := strings.TrimSpace(in.CategoryID)
	if categoryID == "" {
		return nil, fmt.Errorf("%w: falta category_id", domain.ErrInvalidInput)
	}
	category, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: la categoría %s no existe", domain.ErrInvalidInput, categoryID)
	}
	headers, err := uc.headers.List(ctx, categoryListLimit)
	if err != nil {
		return nil, err
	}
	for _, h := range headers {
		if h.CategoryID() == categoryID {
			return nil, fmt.Errorf("%w: la categoría ya está en la cabecera", domain.ErrConflict)
		}
	}

	created, err := uc.headers.Create(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if created.ProductCategory == nil {
		created.ProductCategory = category
	}
	out := toHeaderCategoryResponse(created)
	return &out, nil
}

// SetActive escribe el estado y devuelve la fila según Appwrite.
func (uc *HeaderCategoryUseCase) SetActive(ctx context.Context, id string, active bool) (*dto.HeaderCategoryResponse, error) {
	updated, err := uc.headers.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	out := toHeaderCategoryResponse(updated)
	return &out, nil
}

// Delete quita la categoría de la cabecera.
func (uc *HeaderCategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.headers.Delete(ctx, id)
}

func toHeaderCategoryResponse(h *entity.HeaderCategory) dto.HeaderCategoryResponse {
	out := dto.HeaderCategoryResponse{ID: h.ID, IsActive: h.IsActive}
	if h.ProductCategory != nil {
		c := toCategoryResponse(h.ProductCategory)
		out.Category = &c
	}
	return out
}
