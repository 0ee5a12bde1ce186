package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryResponse métricas del dashboard, importes con dos decimales.
type SummaryResponse struct {
	TotalOrders            int    `json:"total_orders"`
	TotalEarnings          string `json:"total_earnings"`
	TotalDeliveryAgentFee  string `json:"total_delivery_agent_fee"`
	TotalRestaurantRevenue string `json:"total_restaurant_revenue"`
	TotalProfit            string `json:"total_profit"`
}

// OrderResponse pedido tal como lo muestra la tarjeta del dashboard.
type OrderResponse struct {
	ID               string              `json:"id"`
	CreatedAt        time.Time           `json:"created_at"`
	OrderDate        *time.Time          `json:"order_date,omitempty"`
	Status           string              `json:"status"`
	CustomerName     string              `json:"customer_name"`
	PhoneNumber      string              `json:"phone_number"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	DeliveryCharge   decimal.Decimal     `json:"delivery_charge"`
	DiscountAmount   decimal.Decimal     `json:"discount_amount"`
	DeliveryAgentFee decimal.Decimal     `json:"delivery_agent_fee"`
	Subtotal         decimal.Decimal     `json:"subtotal"`
	GrandTotal       decimal.Decimal     `json:"grand_total"`
	Address          string              `json:"address"`
	City             string              `json:"city"`
	Items            []OrderItemResponse `json:"items"`
	DeliveryAgents   []string            `json:"delivery_agents"`
}

// OrderItemResponse línea del pedido.
type OrderItemResponse struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Quantity      decimal.Decimal `json:"quantity"`
	Label         string          `json:"label,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// DashboardSummaryResponse respuesta de GET /api/dashboard/summary.
type DashboardSummaryResponse struct {
	FilterLabel string          `json:"filter_label"`
	Summary     SummaryResponse `json:"summary"`
	Total       int             `json:"total"`
	Orders      []OrderResponse `json:"orders"`
}

// DashboardStateResponse estado del controlador de filtros del administrador.
type DashboardStateResponse struct {
	DateMode     string          `json:"date_mode"`
	PendingStart string          `json:"pending_start"`
	PendingEnd   string          `json:"pending_end"`
	RangeStart   string          `json:"range_start"`
	RangeEnd     string          `json:"range_end"`
	Status       string          `json:"status"`
	Loading      bool            `json:"loading"`
	Error        string          `json:"error,omitempty"`
	FilterLabel  string          `json:"filter_label"`
	Summary      SummaryResponse `json:"summary"`
	Orders       []OrderResponse `json:"orders"`
}

// CustomRangeRequest rango personalizado (YYYY-MM-DD; vacío = sin fijar).
type CustomRangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StatusRequest filtro de estado ("all" = todos).
type StatusRequest struct {
	Status string `json:"status"`
}
