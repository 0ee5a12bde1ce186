// Package orders carga pedidos del sistema externo y normaliza sus atributos embebidos.
package orders

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/rasan-admin-api/internal/application/ports"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
	"github.com/jhoicas/rasan-admin-api/pkg/jsontext"
)

// StatusAll valor del filtro de estado que significa "sin filtro".
const StatusAll = "all"

// FetchResult resultado de FetchOrders. Nunca se devuelve error: los fallos viajan en Error.
type FetchResult struct {
	Success bool
	Orders  []entity.Order
	Total   int
	Error   string
}

// Fetcher ejecuta la consulta de pedidos del dashboard.
type Fetcher struct {
	repo    repository.OrderRepository
	log     zerolog.Logger
	metrics ports.MetricsRecorder
}

// NewFetcher construye el fetcher. metrics puede ser nil.
func NewFetcher(repo repository.OrderRepository, log zerolog.Logger, metrics ports.MetricsRecorder) *Fetcher {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &Fetcher{repo: repo, log: log, metrics: metrics}
}

// FetchOrders devuelve los pedidos creados en [start, end] con el estado indicado,
// del más reciente al más antiguo. start/end nil y status "all" o vacío no filtran.
func (f *Fetcher) FetchOrders(ctx context.Context, start, end *time.Time, status string) FetchResult {
	q := repository.OrderQuery{CreatedAfter: start, CreatedBefore: end}
	if status != "" && status != StatusAll {
		q.Status = status
	}

	records, total, err := f.repo.Query(ctx, q)
	if err != nil {
		f.metrics.RecordFetch("orders", "error")
		f.log.Error().Err(err).Str("status", status).Msg("error cargando pedidos")
		return FetchResult{
			Success: false,
			Orders:  []entity.Order{},
			Total:   0,
			Error:   "No se pudieron cargar los pedidos: " + err.Error(),
		}
	}
	f.metrics.RecordFetch("orders", "ok")

	list := make([]entity.Order, 0, len(records))
	for _, rec := range records {
		list = append(list, f.normalize(rec))
	}
	return FetchResult{Success: true, Orders: list, Total: total}
}

// normalize decodifica items y dirección. Si cualquiera de los dos es ilegible
// se reemplazan ambos por valores vacíos.
func (f *Fetcher) normalize(rec repository.OrderRecord) entity.Order {
	order := rec.Order

	var rows []lineItemRow
	var address entity.ShippingAddress
	itemsErr := jsontext.Decode(rec.ItemsRaw, &rows)
	addressErr := jsontext.Decode(rec.ShippingAddressRaw, &address)
	if itemsErr != nil || addressErr != nil {
		f.log.Warn().
			AnErr("items_error", itemsErr).
			AnErr("address_error", addressErr).
			Str("order_id", order.ID).
			Msg("JSON embebido inválido en el pedido, se usan valores vacíos")
		rows = nil
		address = entity.ShippingAddress{}
	}
	items := make([]entity.LineItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toEntity())
	}
	order.Items = items
	order.ShippingAddress = address
	return order
}

// lineItemRow forma de una línea tal como la escribe la app de pedidos. Los importes
// se leen con jsontext.Number: un campo vacío o no numérico vale cero y no invalida
// el resto de las líneas.
type lineItemRow struct {
	ProductID       string             `json:"productId"`
	Name            string             `json:"name"`
	Price           jsontext.Number    `json:"price"`
	Quantity        jsontext.Number    `json:"quantity"`
	QuantityOptions *quantityOptionRow `json:"quantityOptions"`
}

type quantityOptionRow struct {
	Label         string          `json:"label"`
	AppPrice      jsontext.Number `json:"appPrice"`
	PurchasePrice jsontext.Number `json:"purchasePrice"`
	Discount      jsontext.Number `json:"discount"`
}

func (r lineItemRow) toEntity() entity.LineItem {
	li := entity.LineItem{
		ProductID: r.ProductID,
		Name:      r.Name,
		Price:     r.Price.Decimal,
		Quantity:  r.Quantity.Decimal,
	}
	if r.QuantityOptions != nil {
		li.QuantityOptions = &entity.QuantityOption{
			Label:         r.QuantityOptions.Label,
			AppPrice:      r.QuantityOptions.AppPrice.Decimal,
			PurchasePrice: r.QuantityOptions.PurchasePrice.Decimal,
			Discount:      r.QuantityOptions.Discount.Decimal,
		}
	}
	return li
}
