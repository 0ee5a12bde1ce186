package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository       = (*CategoryRepo)(nil)
	_ repository.HeaderCategoryRepository = (*HeaderCategoryRepo)(nil)
	_ repository.BodyCategoryRepository   = (*BodyCategoryRepo)(nil)
)

// ── Categorías de producto ───────────────────────────────────────────────────

// CategoryRepo tabla de categorías de producto.
type CategoryRepo struct {
	tables  *Tables
	tableID string
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(tables *Tables, tableID string) *CategoryRepo {
	return &CategoryRepo{tables: tables, tableID: tableID}
}

func (r *CategoryRepo) List(ctx context.Context, limit int) ([]*entity.Category, error) {
	queries := []Query{OrderDesc("$createdAt")}
	if limit > 0 {
		queries = append(queries, Limit(limit))
	}
	list, err := r.tables.ListRows(ctx, r.tableID, queries...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	rows, err := decodeRows[categoryRow](list.Rows)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	raw, err := r.tables.GetRow(ctx, r.tableID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return decodeCategory(raw)
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	raw, err := r.tables.CreateRow(ctx, r.tableID, c.ID, categoryData(c))
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	if saved, err := decodeCategory(raw); err == nil {
		c.CreatedAt = saved.CreatedAt
	}
	return nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	if _, err := r.tables.UpdateRow(ctx, r.tableID, c.ID, categoryData(c)); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// SetActive devuelve el estado que confirmó Appwrite, no el solicitado.
func (r *CategoryRepo) SetActive(ctx context.Context, id string, active bool) (*entity.Category, error) {
	raw, err := r.tables.UpdateRow(ctx, r.tableID, id, map[string]any{"isActive": active})
	if err != nil {
		return nil, fmt.Errorf("toggle category: %w", err)
	}
	return decodeCategory(raw)
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if err := r.tables.DeleteRow(ctx, r.tableID, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func categoryData(c *entity.Category) map[string]any {
	return map[string]any{
		"categoryName":        c.Name,
		"categoryDescription": c.Description,
		"isActive":            c.IsActive,
		"categoryImg":         c.ImageURL,
		"categoryImgId":       c.ImageID,
	}
}

func decodeCategory(raw json.RawMessage) (*entity.Category, error) {
	var row categoryRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, fmt.Errorf("decodificar categoría: %w", err)
	}
	return row.toEntity(), nil
}

func (row *categoryRow) toEntity() *entity.Category {
	return &entity.Category{
		ID:          row.ID,
		Name:        row.CategoryName,
		Description: row.CategoryDescription,
		IsActive:    row.IsActive,
		ImageURL:    row.CategoryImg,
		ImageID:     row.CategoryImgID,
		CreatedAt:   row.CreatedAt,
	}
}

// relatedCategories decodifica una relación que puede venir expandida (objetos) o como ids.
func relatedCategories(raw json.RawMessage) []entity.Category {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var items []json.RawMessage
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
	} else {
		items = []json.RawMessage{raw}
	}
	out := make([]entity.Category, 0, len(items))
	for _, item := range items {
		var id string
		if err := json.Unmarshal(item, &id); err == nil {
			out = append(out, entity.Category{ID: id})
			continue
		}
		var row categoryRow
		if err := json.Unmarshal(item, &row); err == nil && row.ID != "" {
			out = append(out, *row.toEntity())
		}
	}
	return out
}

// ── Categorías de cabecera ───────────────────────────────────────────────────

// HeaderCategoryRepo tabla de categorías destacadas.
type HeaderCategoryRepo struct {
	tables  *Tables
	tableID string
}

// NewHeaderCategoryRepository construye el adaptador.
func NewHeaderCategoryRepository(tables *Tables, tableID string) *HeaderCategoryRepo {
	return &HeaderCategoryRepo{tables: tables, tableID: tableID}
}

func (r *HeaderCategoryRepo) List(ctx context.Context, limit int) ([]*entity.HeaderCategory, error) {
	queries := []Query{Select("*", "productCategory.*")}
	if limit > 0 {
		queries = append(queries, Limit(limit))
	}
	list, err := r.tables.ListRows(ctx, r.tableID, queries...)
	if err != nil {
		return nil, fmt.Errorf("list header categories: %w", err)
	}
	rows, err := decodeRows[headerCategoryRow](list.Rows)
	if err != nil {
		return nil, fmt.Errorf("list header categories: %w", err)
	}
	out := make([]*entity.HeaderCategory, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

// Create agrega la categoría a la cabecera, activa.
func (r *HeaderCategoryRepo) Create(ctx context.Context, categoryID string) (*entity.HeaderCategory, error) {
	raw, err := r.tables.CreateRow(ctx, r.tableID, uuid.New().String(), map[string]any{
		"productCategory": categoryID,
		"isActive":        true,
	})
	if err != nil {
		return nil, fmt.Errorf("insert header category: %w", err)
	}
	return decodeHeaderCategory(raw)
}

func (r *HeaderCategoryRepo) SetActive(ctx context.Context, id string, active bool) (*entity.HeaderCategory, error) {
	raw, err := r.tables.UpdateRow(ctx, r.tableID, id, map[string]any{"isActive": active})
	if err != nil {
		return nil, fmt.Errorf("toggle header category: %w", err)
	}
	return decodeHeaderCategory(raw)
}

func (r *HeaderCategoryRepo) Delete(ctx context.Context, id string) error {
	if err := r.tables.DeleteRow(ctx, r.tableID, id); err != nil {
		return fmt.Errorf("delete header category: %w", err)
	}
	return nil
}

func decodeHeaderCategory(raw json.RawMessage) (*entity.HeaderCategory, error) {
	var row headerCategoryRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, fmt.Errorf("decodificar categoría de cabecera: %w", err)
	}
	return row.toEntity(), nil
}

func (row *headerCategoryRow) toEntity() *entity.HeaderCategory {
	h := &entity.HeaderCategory{ID: row.ID, IsActive: row.IsActive}
	if related := relatedCategories(row.ProductCategory); len(related) > 0 {
		h.ProductCategory = &related[0]
	}
	return h
}

// ── Secciones del cuerpo ─────────────────────────────────────────────────────

// BodyCategoryRepo tabla de secciones del cuerpo.
type BodyCategoryRepo struct {
	tables  *Tables
	tableID string
}

// NewBodyCategoryRepository construye el adaptador.
func NewBodyCategoryRepository(tables *Tables, tableID string) *BodyCategoryRepo {
	return &BodyCategoryRepo{tables: tables, tableID: tableID}
}

func (r *BodyCategoryRepo) List(ctx context.Context, limit int) ([]*entity.BodyCategory, error) {
	queries := []Query{Select("*", "productCategory.*")}
	if limit > 0 {
		queries = append(queries, Limit(limit))
	}
	list, err := r.tables.ListRows(ctx, r.tableID, queries...)
	if err != nil {
		return nil, fmt.Errorf("list body categories: %w", err)
	}
	rows, err := decodeRows[bodyCategoryRow](list.Rows)
	if err != nil {
		return nil, fmt.Errorf("list body categories: %w", err)
	}
	out := make([]*entity.BodyCategory, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

// SetProductCategories reemplaza la relación completa por los ids indicados.
func (r *BodyCategoryRepo) SetProductCategories(ctx context.Context, id string, categoryIDs []string) (*entity.BodyCategory, error) {
	if categoryIDs == nil {
		categoryIDs = []string{}
	}
	raw, err := r.tables.UpdateRow(ctx, r.tableID, id, map[string]any{"productCategory": categoryIDs})
	if err != nil {
		return nil, fmt.Errorf("update body category: %w", err)
	}
	var row bodyCategoryRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, fmt.Errorf("decodificar sección: %w", err)
	}
	return row.toEntity(), nil
}

func (row *bodyCategoryRow) toEntity() *entity.BodyCategory {
	return &entity.BodyCategory{
		ID:                row.ID,
		Name:              row.BodyCategoryName,
		ProductCategories: relatedCategories(row.ProductCategory),
	}
}
