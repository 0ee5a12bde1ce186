package orders_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rasan-admin-api/internal/application/orders"
	"github.com/jhoicas/rasan-admin-api/internal/domain/analytics"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
)

type fakeOrderRepo struct {
	records []repository.OrderRecord
	total   int
	err     error
	last    repository.OrderQuery
}

func (f *fakeOrderRepo) Query(_ context.Context, q repository.OrderQuery) ([]repository.OrderRecord, int, error) {
	f.last = q
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.records, f.total, nil
}

func record(id, items, address string) repository.OrderRecord {
	return repository.OrderRecord{
		Order:              entity.Order{ID: id, TotalAmount: decimal.NewFromInt(100)},
		ItemsRaw:           json.RawMessage(items),
		ShippingAddressRaw: json.RawMessage(address),
	}
}

func TestFetchOrders_DecodificaTextoJSON(t *testing.T) {
	repo := &fakeOrderRepo{
		records: []repository.OrderRecord{
			record("o1",
				`"[{\"name\":\"Rice\",\"price\":50,\"quantity\":2,\"quantityOptions\":{\"label\":\"1kg\",\"purchasePrice\":40}}]"`,
				`"{\"city\":\"Chennai\",\"details\":\"12 MG Road\"}"`),
		},
		total: 1,
	}
	f := orders.NewFetcher(repo, zerolog.Nop(), nil)

	res := f.FetchOrders(context.Background(), nil, nil, "all")

	require.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Orders, 1)
	o := res.Orders[0]
	require.Len(t, o.Items, 1)
	assert.Equal(t, "80", o.Items[0].PurchaseCost().String())
	assert.Equal(t, "12 MG Road", o.ShippingAddress.Line())
	assert.Equal(t, "", repo.last.Status, "all no debe filtrar por estado")
}

func TestFetchOrders_ItemsYaEstructurados(t *testing.T) {
	repo := &fakeOrderRepo{records: []repository.OrderRecord{
		record("o1", `[{"name":"Dal","quantity":1}]`, `{"city":"Pune"}`),
	}, total: 1}
	f := orders.NewFetcher(repo, zerolog.Nop(), nil)

	res := f.FetchOrders(context.Background(), nil, nil, "")
	require.True(t, res.Success)
	assert.Equal(t, "Dal", res.Orders[0].Items[0].Name)
	assert.Equal(t, "Pune", res.Orders[0].ShippingAddress.City)
}

func TestFetchOrders_JSONInvalidoUsaVacios(t *testing.T) {
	var logs bytes.Buffer
	repo := &fakeOrderRepo{records: []repository.OrderRecord{
		// items ilegible, dirección válida: ambos quedan vacíos
		record("o1", `"not json"`, `"{\"city\":\"Pune\"}"`),
		record("o2", `"[]"`, `""`),
	}, total: 2}
	f := orders.NewFetcher(repo, zerolog.New(&logs), nil)

	res := f.FetchOrders(context.Background(), nil, nil, "pending")

	require.True(t, res.Success)
	require.Len(t, res.Orders, 2)
	assert.Empty(t, res.Orders[0].Items)
	assert.NotNil(t, res.Orders[0].Items)
	assert.Equal(t, entity.ShippingAddress{}, res.Orders[0].ShippingAddress)
	assert.Equal(t, "100", res.Orders[0].TotalAmount.String(), "el resto del pedido se conserva")
	assert.Empty(t, res.Orders[1].Items)
	assert.Contains(t, logs.String(), `"order_id":"o1"`)
	assert.NotContains(t, logs.String(), `"order_id":"o2"`)
	assert.Equal(t, "pending", repo.last.Status)
}

func TestFetchOrders_ImporteIlegibleEnUnaLineaValeCero(t *testing.T) {
	var logs bytes.Buffer
	repo := &fakeOrderRepo{records: []repository.OrderRecord{
		record("o1",
			`[{"quantity":2,"quantityOptions":{"purchasePrice":40}},{"quantity":1,"quantityOptions":{"purchasePrice":""}}]`,
			`{"city":"Pune"}`),
	}, total: 1}
	f := orders.NewFetcher(repo, zerolog.New(&logs), nil)

	res := f.FetchOrders(context.Background(), nil, nil, "")

	require.True(t, res.Success)
	o := res.Orders[0]
	// Caso 1: ambas líneas se conservan, la ilegible con costo cero
	require.Len(t, o.Items, 2)
	assert.True(t, o.Items[1].PurchaseCost().IsZero())
	// Caso 2: la dirección no se descarta
	assert.Equal(t, "Pune", o.ShippingAddress.City)
	// Caso 3: el ingreso del restaurante cuenta solo la línea válida
	got := analytics.Aggregate(res.Orders).Format()
	assert.Equal(t, "80.00", got.TotalRestaurantRevenue)
	assert.Empty(t, logs.String(), "un campo ilegible no es JSON inválido")
}

func TestFetchOrders_CantidadNoNumericaValeCero(t *testing.T) {
	repo := &fakeOrderRepo{records: []repository.OrderRecord{
		record("o1",
			`"[{\"quantity\":\"abc\",\"quantityOptions\":{\"purchasePrice\":40}},{\"quantity\":\"3\",\"quantityOptions\":{\"purchasePrice\":\"10\"}}]"`,
			`""`),
	}, total: 1}
	f := orders.NewFetcher(repo, zerolog.Nop(), nil)

	res := f.FetchOrders(context.Background(), nil, nil, "")

	require.True(t, res.Success)
	require.Len(t, res.Orders[0].Items, 2)
	assert.Equal(t, "30.00", analytics.Aggregate(res.Orders).Format().TotalRestaurantRevenue)
}

func TestFetchOrders_PedidoMalformadoNoAfectaAHermanos(t *testing.T) {
	repo := &fakeOrderRepo{records: []repository.OrderRecord{
		record("o1", `"not json"`, `{"city":"Pune"}`),
		record("o2",
			`"[{\"name\":\"Rice\",\"quantity\":2,\"quantityOptions\":{\"purchasePrice\":40}}]"`,
			`"{\"city\":\"Chennai\"}"`),
	}, total: 2}
	f := orders.NewFetcher(repo, zerolog.Nop(), nil)

	res := f.FetchOrders(context.Background(), nil, nil, "")

	require.True(t, res.Success)
	require.Len(t, res.Orders, 2)
	assert.Empty(t, res.Orders[0].Items)
	require.Len(t, res.Orders[1].Items, 1)
	assert.Equal(t, "Chennai", res.Orders[1].ShippingAddress.City)

	got := analytics.Aggregate(res.Orders).Format()
	assert.Equal(t, 2, got.TotalOrders)
	assert.Equal(t, "200.00", got.TotalEarnings)
	assert.Equal(t, "80.00", got.TotalRestaurantRevenue, "el pedido hermano sigue contando")
	assert.Equal(t, "120.00", got.TotalProfit)
}

func TestFetchOrders_PropagaRango(t *testing.T) {
	repo := &fakeOrderRepo{}
	f := orders.NewFetcher(repo, zerolog.Nop(), nil)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)

	res := f.FetchOrders(context.Background(), &start, &end, "delivered")

	require.True(t, res.Success)
	assert.Equal(t, &start, repo.last.CreatedAfter)
	assert.Equal(t, &end, repo.last.CreatedBefore)
	assert.Equal(t, "delivered", repo.last.Status)
	assert.Empty(t, res.Orders)
}

func TestFetchOrders_ErrorRemotoNoPropaga(t *testing.T) {
	repo := &fakeOrderRepo{err: errors.New("network down")}
	f := orders.NewFetcher(repo, zerolog.Nop(), nil)

	res := f.FetchOrders(context.Background(), nil, nil, "all")

	assert.False(t, res.Success)
	assert.Empty(t, res.Orders)
	assert.Zero(t, res.Total)
	assert.Contains(t, res.Error, "network down")
}
