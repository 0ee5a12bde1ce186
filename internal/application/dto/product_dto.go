package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o editar un producto. Los punteros nil son campos sin completar.
type ProductRequest struct {
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	Price           *decimal.Decimal        `json:"price"`
	Discount        *decimal.Decimal        `json:"discount"`
	StockQuantity   *int                    `json:"stock_quantity"`
	CategoryID      string                  `json:"category_id"`
	QuantityOptions []QuantityOptionRequest `json:"quantity_options"`
}

// QuantityOptionRequest presentación del producto en el formulario.
type QuantityOptionRequest struct {
	Label         string           `json:"label"`
	AppPrice      *decimal.Decimal `json:"app_price"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	Discount      *decimal.Decimal `json:"discount"`
}

// QuantityOptionResponse presentación de un producto.
type QuantityOptionResponse struct {
	Label         string          `json:"label"`
	AppPrice      decimal.Decimal `json:"app_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Discount      decimal.Decimal `json:"discount"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Description     string                   `json:"description"`
	Price           decimal.Decimal          `json:"price"`
	Discount        decimal.Decimal          `json:"discount"`
	FinalPrice      decimal.Decimal          `json:"final_price"`
	StockQuantity   int                      `json:"stock_quantity"`
	InStock         bool                     `json:"in_stock"`
	CategoryID      string                   `json:"category_id"`
	ImageURL        string                   `json:"image_url"`
	ImageID         string                   `json:"image_id"`
	QuantityOptions []QuantityOptionResponse `json:"quantity_options"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductFeedResponse estado del listado incremental del administrador.
type ProductFeedResponse struct {
	Status  string            `json:"status"`
	Items   []ProductResponse `json:"items"`
	Offset  int               `json:"offset"`
	HasMore bool              `json:"has_more"`
	Search  string            `json:"search"`
	Error   string            `json:"error,omitempty"`
}

// SearchRequest término de búsqueda del listado incremental.
type SearchRequest struct {
	Term string `json:"term"`
}
