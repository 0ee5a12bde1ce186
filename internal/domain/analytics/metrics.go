// Package analytics contiene los cálculos de dominio del dashboard de pedidos.
// Todo es puro: sin I/O y sin estado.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// Summary métricas agregadas de una lista de pedidos.
type Summary struct {
	TotalOrders            int
	TotalEarnings          decimal.Decimal // Σ (totalAmount + deliveryCharge - discountAmount)
	TotalDeliveryAgentFee  decimal.Decimal // Σ deliveryAgentFee
	TotalRestaurantRevenue decimal.Decimal // Σ purchasePrice × quantity de todas las líneas
	TotalProfit            decimal.Decimal // earnings - agentFee - restaurantRevenue
}

// FormattedSummary Summary con los importes a exactamente dos decimales.
type FormattedSummary struct {
	TotalOrders            int
	TotalEarnings          string
	TotalDeliveryAgentFee  string
	TotalRestaurantRevenue string
	TotalProfit            string
}

// Aggregate reduce la lista de pedidos a las métricas del dashboard.
// Una lista nil o vacía produce un resumen en cero.
func Aggregate(orders []entity.Order) Summary {
	s := Summary{
		TotalOrders:            len(orders),
		TotalEarnings:          decimal.Zero,
		TotalDeliveryAgentFee:  decimal.Zero,
		TotalRestaurantRevenue: decimal.Zero,
	}
	for i := range orders {
		o := &orders[i]
		s.TotalEarnings = s.TotalEarnings.Add(Earnings(o))
		s.TotalDeliveryAgentFee = s.TotalDeliveryAgentFee.Add(o.DeliveryAgentFee)
		s.TotalRestaurantRevenue = s.TotalRestaurantRevenue.Add(PurchaseCost(o))
	}
	s.TotalProfit = s.TotalEarnings.Sub(s.TotalDeliveryAgentFee).Sub(s.TotalRestaurantRevenue)
	return s
}

// Format redondea cada importe a dos decimales. Misma entrada, misma salida byte a byte.
func (s Summary) Format() FormattedSummary {
	return FormattedSummary{
		TotalOrders:            s.TotalOrders,
		TotalEarnings:          s.TotalEarnings.StringFixed(2),
		TotalDeliveryAgentFee:  s.TotalDeliveryAgentFee.StringFixed(2),
		TotalRestaurantRevenue: s.TotalRestaurantRevenue.StringFixed(2),
		TotalProfit:            s.TotalProfit.StringFixed(2),
	}
}

// Earnings ingreso bruto de un pedido: totalAmount + deliveryCharge - discountAmount.
func Earnings(o *entity.Order) decimal.Decimal {
	return o.TotalAmount.Add(o.DeliveryCharge).Sub(o.DiscountAmount)
}

// PurchaseCost lo que se paga a la tienda por un pedido (costo de compra de sus líneas).
func PurchaseCost(o *entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.PurchaseCost())
	}
	return total
}

// Subtotal Σ price × quantity de las líneas (precio al cliente).
func Subtotal(o *entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(item.Quantity))
	}
	return total
}

// GrandTotal totalAmount + deliveryCharge, tal como lo muestra la tarjeta de pedido.
func GrandTotal(o *entity.Order) decimal.Decimal {
	return o.TotalAmount.Add(o.DeliveryCharge)
}
