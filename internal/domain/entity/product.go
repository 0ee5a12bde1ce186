package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// QuantityOptions se persiste en Appwrite como texto JSON; aquí ya está decodificado.
type Product struct {
	ID              string
	Name            string
	Description     string
	Price           decimal.Decimal // precio de lista
	Discount        decimal.Decimal // descuento absoluto sobre Price
	StockQuantity   int
	CategoryID      string
	ImageURL        string // URL de vista del archivo en el bucket
	ImageID         string // id del archivo en el bucket; vacío si no tiene imagen
	QuantityOptions []QuantityOption
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FinalPrice precio mostrado al cliente (Price - Discount).
func (p *Product) FinalPrice() decimal.Decimal {
	return p.Price.Sub(p.Discount)
}

// InStock indica si queda stock.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// QuantityOption presentación de un producto (ej. "5kg") con precio al cliente y costo de compra.
type QuantityOption struct {
	Label         string          `json:"label"`
	AppPrice      decimal.Decimal `json:"appPrice"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Discount      decimal.Decimal `json:"discount"`
}
