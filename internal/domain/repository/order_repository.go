package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// OrderQuery filtros de la consulta de pedidos. Campos nil o vacíos no filtran.
type OrderQuery struct {
	CreatedAfter  *time.Time // $createdAt >= CreatedAfter
	CreatedBefore *time.Time // $createdAt <= CreatedBefore
	Status        string     // igualdad exacta; vacío = todos
}

// OrderRecord fila cruda de pedido. Items y ShippingAddress llegan tal cual los guarda
// el sistema de pedidos (normalmente texto JSON) y se normalizan en la capa de aplicación.
type OrderRecord struct {
	Order              entity.Order
	ItemsRaw           json.RawMessage
	ShippingAddressRaw json.RawMessage
}

// OrderRepository puerto de lectura de pedidos. Siempre ordena por creación descendente
// y devuelve el conjunto completo (sin paginación en servidor).
type OrderRepository interface {
	Query(ctx context.Context, q OrderQuery) (records []OrderRecord, total int, err error)
}
