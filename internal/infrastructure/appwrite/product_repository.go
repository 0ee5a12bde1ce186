package appwrite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
	"github.com/jhoicas/rasan-admin-api/pkg/jsontext"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la tabla de productos.
type ProductRepo struct {
	tables  *Tables
	tableID string
	log     zerolog.Logger
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(tables *Tables, tableID string, log zerolog.Logger) *ProductRepo {
	return &ProductRepo{tables: tables, tableID: tableID, log: log}
}

// List devuelve una página ordenada por $id ascendente, filtrando por nombre si hay búsqueda.
func (r *ProductRepo) List(ctx context.Context, q repository.ProductQuery) ([]*entity.Product, int, error) {
	queries := []Query{OrderAsc("$id")}
	if q.Limit > 0 {
		queries = append(queries, Limit(q.Limit))
	}
	if q.Offset > 0 {
		queries = append(queries, Offset(q.Offset))
	}
	if q.Search != "" {
		queries = append(queries, Contains("productName", q.Search))
	}

	list, err := r.tables.ListRows(ctx, r.tableID, queries...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	rows, err := decodeRows[productRow](list.Rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, r.toEntity(&rows[i]))
	}
	return products, list.Total, nil
}

// GetByID obtiene un producto por id; nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	raw, err := r.tables.GetRow(ctx, r.tableID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	var row productRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, fmt.Errorf("get product: decodificar: %w", err)
	}
	return r.toEntity(&row), nil
}

// Create persiste un producto nuevo. Si no trae id se genera uno.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	data, err := productData(product)
	if err != nil {
		return err
	}
	raw, err := r.tables.CreateRow(ctx, r.tableID, product.ID, data)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	r.refresh(product, raw)
	return nil
}

// Update reescribe todos los atributos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	data, err := productData(product)
	if err != nil {
		return err
	}
	raw, err := r.tables.UpdateRow(ctx, r.tableID, product.ID, data)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	r.refresh(product, raw)
	return nil
}

// Delete elimina la fila. La imagen del bucket la gestiona el caso de uso.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := r.tables.DeleteRow(ctx, r.tableID, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// refresh copia las marcas de tiempo que asigna Appwrite.
func (r *ProductRepo) refresh(product *entity.Product, raw json.RawMessage) {
	var row productRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return
	}
	product.CreatedAt = row.CreatedAt
	product.UpdatedAt = row.UpdatedAt
}

func productData(p *entity.Product) (map[string]any, error) {
	options := p.QuantityOptions
	if options == nil {
		options = []entity.QuantityOption{}
	}
	encoded, err := jsontext.Encode(options)
	if err != nil {
		return nil, fmt.Errorf("serializar quantityOptions: %w", err)
	}
	return map[string]any{
		"productName":        p.Name,
		"productDescription": p.Description,
		"price":              p.Price.InexactFloat64(),
		"discount":           p.Discount.InexactFloat64(),
		"stockQuantity":      p.StockQuantity,
		"productCategoryId":  p.CategoryID,
		"productCategory":    []string{p.CategoryID},
		"productImg":         p.ImageURL,
		"imageId":            p.ImageID,
		"quantityOptions":    encoded,
	}, nil
}

func (r *ProductRepo) toEntity(row *productRow) *entity.Product {
	p := &entity.Product{
		ID:            row.ID,
		Name:          row.ProductName,
		Description:   row.ProductDescription,
		Price:         row.Price,
		Discount:      row.Discount,
		StockQuantity: int(row.StockQuantity.IntPart()),
		CategoryID:    row.ProductCategoryID,
		ImageURL:      row.ProductImg,
		ImageID:       row.ImageID,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if err := jsontext.Decode(row.QuantityOptions, &p.QuantityOptions); err != nil {
		r.log.Warn().Err(err).Str("product_id", row.ID).Msg("quantityOptions inválido, se ignora")
		p.QuantityOptions = nil
	}
	return p
}
