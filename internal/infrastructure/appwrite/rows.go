package appwrite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// flexString acepta string o número (teléfonos y códigos que a veces se guardan como integer).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	*f = flexString(strings.Trim(string(b), `"`))
	return nil
}

// decodeRows decodifica cada fila cruda en T.
func decodeRows[T any](rows []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(rows))
	for i, raw := range rows {
		var row T
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("appwrite: decodificar fila %d: %w", i, err)
		}
		out = append(out, row)
	}
	return out, nil
}

// parseTime interpreta fechas ISO 8601 de Appwrite; nil si está vacía o no es válida.
func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000-07:00", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ── Filas por tabla ───────────────────────────────────────────────────────────

type orderRow struct {
	ID               string          `json:"$id"`
	CreatedAt        time.Time       `json:"$createdAt"`
	OrderDate        string          `json:"orderDate"`
	Status           string          `json:"status"`
	CustomerName     string          `json:"customerName"`
	PhoneNumber      flexString      `json:"phoneNumber"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	DeliveryCharge   decimal.Decimal `json:"deliveryCharge"`
	DiscountAmount   decimal.Decimal `json:"discountAmount"`
	DeliveryAgentFee decimal.Decimal `json:"deliveryAgentFee"`
	Items            json.RawMessage `json:"items"`
	ShippingAddress  json.RawMessage `json:"shippingAddress"`
	DeliveryAgents   json.RawMessage `json:"deliveryAgents"`
}

type deliveryAgentRow struct {
	ID    string     `json:"$id"`
	Name  string     `json:"name"`
	Phone flexString `json:"phone"`
}

type productRow struct {
	ID                 string          `json:"$id"`
	CreatedAt          time.Time       `json:"$createdAt"`
	UpdatedAt          time.Time       `json:"$updatedAt"`
	ProductName        string          `json:"productName"`
	ProductDescription string          `json:"productDescription"`
	Price              decimal.Decimal `json:"price"`
	Discount           decimal.Decimal `json:"discount"`
	StockQuantity      decimal.Decimal `json:"stockQuantity"`
	ProductCategoryID  string          `json:"productCategoryId"`
	ProductImg         string          `json:"productImg"`
	ImageID            string          `json:"imageId"`
	QuantityOptions    json.RawMessage `json:"quantityOptions"`
}

type categoryRow struct {
	ID                  string    `json:"$id"`
	CreatedAt           time.Time `json:"$createdAt"`
	CategoryName        string    `json:"categoryName"`
	CategoryDescription string    `json:"categoryDescription"`
	IsActive            bool      `json:"isActive"`
	CategoryImg         string    `json:"categoryImg"`
	CategoryImgID       string    `json:"categoryImgId"`
}

type headerCategoryRow struct {
	ID              string          `json:"$id"`
	IsActive        bool            `json:"isActive"`
	ProductCategory json.RawMessage `json:"productCategory"`
}

type bodyCategoryRow struct {
	ID               string          `json:"$id"`
	BodyCategoryName string          `json:"bodyCategoryName"`
	ProductCategory  json.RawMessage `json:"productCategory"`
}

type carouselRow struct {
	ID      string          `json:"$id"`
	ImageID string          `json:"imageId"`
	Image   json.RawMessage `json:"image"`
}
