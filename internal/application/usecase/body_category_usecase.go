package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
)

// BodyCategoryUseCase secciones del cuerpo de la app.
type BodyCategoryUseCase struct {
	bodies repository.BodyCategoryRepository
}

// NewBodyCategoryUseCase construye el caso de uso.
func NewBodyCategoryUseCase(bodies repository.BodyCategoryRepository) *BodyCategoryUseCase {
	return &BodyCategoryUseCase{bodies: bodies}
}

// List devuelve las secciones con sus categorías.
func (uc *BodyCategoryUseCase) List(ctx context.Context) ([]dto.BodyCategoryResponse, error) {
	list, err := uc.bodies.List(ctx, categoryListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BodyCategoryResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBodyCategoryResponse(b))
	}
	return out, nil
}

// SetProductCategories reemplaza las categorías de la sección. Ids vacíos o repetidos se descartan.
func (uc *BodyCategoryUseCase) SetProductCategories(ctx context.Context, id string, in dto.BodyCategoryRequest) (*dto.BodyCategoryResponse, error) {
	seen := make(map[string]struct{}, len(in.CategoryIDs))
	ids := make([]string, 0, len(in.CategoryIDs))
	for _, raw := range in.CategoryIDs {
		cid := strings.TrimSpace(raw)
		if cid == "" {
			continue
		}
		if _, dup := seen[cid]; dup {
			continue
		}
		seen[cid] = struct{}{}
		ids = append(ids, cid)
	}
	updated, err := uc.bodies.SetProductCategories(ctx, id, ids)
	if err != nil {
		return nil, err
	}
	out := toBodyCategoryResponse(updated)
	return &out, nil
}

func toBodyCategoryResponse(b *entity.BodyCategory) dto.BodyCategoryResponse {
	cats := make([]dto.CategoryResponse, 0, len(b.ProductCategories))
	for i := range b.ProductCategories {
		cats = append(cats, toCategoryResponse(&b.ProductCategories[i]))
	}
	return dto.BodyCategoryResponse{ID: b.ID, Name: b.Name, Categories: cats}
}
