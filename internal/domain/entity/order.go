package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados conocidos de un pedido. El sistema de pedidos puede añadir otros; se aceptan como texto libre.
const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order representa un pedido leído del sistema externo (solo lectura para la consola).
// Los importes ausentes en la fila quedan en cero (valor cero de decimal.Decimal).
type Order struct {
	ID               string
	CreatedAt        time.Time
	OrderDate        *time.Time
	Status           string
	CustomerName     string
	PhoneNumber      string
	TotalAmount      decimal.Decimal
	DeliveryCharge   decimal.Decimal
	DiscountAmount   decimal.Decimal
	DeliveryAgentFee decimal.Decimal
	Items            []LineItem
	ShippingAddress  ShippingAddress
	DeliveryAgents   []DeliveryAgent
}

// LineItem línea de un pedido. Llega serializada como JSON dentro del campo items.
type LineItem struct {
	ProductID       string          `json:"productId,omitempty"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Quantity        decimal.Decimal `json:"quantity"`
	QuantityOptions *QuantityOption `json:"quantityOptions,omitempty"`
}

// PurchaseCost devuelve purchasePrice × quantity; cero si la línea no trae presentación.
func (li LineItem) PurchaseCost() decimal.Decimal {
	if li.QuantityOptions == nil {
		return decimal.Zero
	}
	return li.QuantityOptions.PurchasePrice.Mul(li.Quantity)
}

// ShippingAddress dirección de entrega (también llega como JSON en texto).
type ShippingAddress struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Details  string `json:"details,omitempty"`
	Street   string `json:"street,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Landmark string `json:"landmark,omitempty"`
}

// Line devuelve la línea de dirección que muestra la consola: details, si no street.
func (a ShippingAddress) Line() string {
	if a.Details != "" {
		return a.Details
	}
	return a.Street
}

// DeliveryAgent repartidor asociado al pedido (relación en Appwrite).
type DeliveryAgent struct {
	ID    string
	Name  string
	Phone string
}
