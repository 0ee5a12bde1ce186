package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// unboundedLimit tope de filas del listado de pedidos: se pide el conjunto completo.
const unboundedLimit = 10000000

// OrderRepo lectura de pedidos desde la tabla de órdenes.
type OrderRepo struct {
	tables  *Tables
	tableID string
}

// NewOrderRepository construye el adaptador de pedidos.
func NewOrderRepository(tables *Tables, tableID string) *OrderRepo {
	return &OrderRepo{tables: tables, tableID: tableID}
}

// Query aplica los filtros, ordena por $createdAt descendente e incluye los repartidores relacionados.
func (r *OrderRepo) Query(ctx context.Context, q repository.OrderQuery) ([]repository.OrderRecord, int, error) {
	queries := make([]Query, 0, 6)
	if q.CreatedAfter != nil {
		queries = append(queries, GreaterThanEqual("$createdAt", Timestamp(*q.CreatedAfter)))
	}
	if q.CreatedBefore != nil {
		queries = append(queries, LessThanEqual("$createdAt", Timestamp(*q.CreatedBefore)))
	}
	if q.Status != "" {
		queries = append(queries, Equal("status", q.Status))
	}
	queries = append(queries,
		OrderDesc("$createdAt"),
		Select("*", "deliveryAgents.*"),
		Limit(unboundedLimit),
	)

	list, err := r.tables.ListRows(ctx, r.tableID, queries...)
	if err != nil {
		return nil, 0, fmt.Errorf("orders.Query: %w", err)
	}
	rows, err := decodeRows[orderRow](list.Rows)
	if err != nil {
		return nil, 0, fmt.Errorf("orders.Query: %w", err)
	}

	records := make([]repository.OrderRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, repository.OrderRecord{
			Order: entity.Order{
				ID:               row.ID,
				CreatedAt:        row.CreatedAt,
				OrderDate:        parseTime(row.OrderDate),
				Status:           row.Status,
				CustomerName:     row.CustomerName,
				PhoneNumber:      string(row.PhoneNumber),
				TotalAmount:      row.TotalAmount,
				DeliveryCharge:   row.DeliveryCharge,
				DiscountAmount:   row.DiscountAmount,
				DeliveryAgentFee: row.DeliveryAgentFee,
				DeliveryAgents:   decodeAgents(row.DeliveryAgents),
			},
			ItemsRaw:           row.Items,
			ShippingAddressRaw: row.ShippingAddress,
		})
	}
	return records, list.Total, nil
}

// decodeAgents acepta lista u objeto único; cualquier otra forma se ignora.
func decodeAgents(raw json.RawMessage) []entity.DeliveryAgent {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var rows []deliveryAgentRow
	if raw[0] == '{' {
		var one deliveryAgentRow
		if err := json.Unmarshal(raw, &one); err != nil {
			return nil
		}
		rows = append(rows, one)
	} else if err := json.Unmarshal(raw, &rows); err != nil {
		return nil
	}
	agents := make([]entity.DeliveryAgent, 0, len(rows))
	for _, a := range rows {
		agents = append(agents, entity.DeliveryAgent{ID: a.ID, Name: a.Name, Phone: string(a.Phone)})
	}
	return agents
}
