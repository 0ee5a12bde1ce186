package appwrite_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
	"github.com/jhoicas/rasan-admin-api/internal/infrastructure/appwrite"
	"github.com/jhoicas/rasan-admin-api/pkg/config"
)

// capturedRequest guarda lo que recibió el servidor falso.
type capturedRequest struct {
	Method  string
	Path    string
	Queries []string
	Header  http.Header
	Body    []byte
}

func newFakeAppwrite(t *testing.T, status int, response string) (*appwrite.Client, *[]capturedRequest) {
	t.Helper()
	var calls []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, capturedRequest{
			Method:  r.Method,
			Path:    r.URL.Path,
			Queries: r.URL.Query()["queries[]"],
			Header:  r.Header.Clone(),
			Body:    body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	client := appwrite.NewClient(config.AppwriteConfig{
		Endpoint:       srv.URL + "/v1",
		ProjectID:      "proj",
		APIKey:         "secret-key",
		TimeoutSeconds: 5,
	})
	return client, &calls
}

// ─────────────────────────────────────────────────────────────────────────────
// Pedidos
// ─────────────────────────────────────────────────────────────────────────────

func TestOrderRepo_Query_ConstruyeFiltrosYDecodifica(t *testing.T) {
	resp := `{"total":1,"rows":[{
		"$id":"o1","$createdAt":"2025-03-10T08:30:00.000+00:00","status":"delivered",
		"customerName":"Asha","phoneNumber":9876543210,
		"totalAmount":110,"deliveryCharge":15,"discountAmount":0,"deliveryAgentFee":15,
		"items":"[{\"name\":\"Rice\",\"quantity\":2}]",
		"shippingAddress":"{\"city\":\"Chennai\"}",
		"deliveryAgents":{"$id":"a1","name":"Ravi","phone":"99"}
	}]}`
	client, calls := newFakeAppwrite(t, http.StatusOK, resp)
	repo := appwrite.NewOrderRepository(appwrite.NewTables(client, "db"), "orders")

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 23, 59, 59, 999000000, time.UTC)
	records, total, err := repo.Query(context.Background(), repository.OrderQuery{
		CreatedAfter: &start, CreatedBefore: &end, Status: "delivered",
	})
	require.NoError(t, err)
	require.Len(t, *calls, 1)

	call := (*calls)[0]
	assert.Equal(t, "/v1/tablesdb/db/tables/orders/rows", call.Path)
	assert.Equal(t, "proj", call.Header.Get("X-Appwrite-Project"))
	assert.Equal(t, "secret-key", call.Header.Get("X-Appwrite-Key"))
	assert.Contains(t, call.Queries, `{"method":"greaterThanEqual","attribute":"$createdAt","values":["2025-03-10T00:00:00.000Z"]}`)
	assert.Contains(t, call.Queries, `{"method":"lessThanEqual","attribute":"$createdAt","values":["2025-03-10T23:59:59.999Z"]}`)
	assert.Contains(t, call.Queries, `{"method":"equal","attribute":"status","values":["delivered"]}`)
	assert.Contains(t, call.Queries, `{"method":"orderDesc","attribute":"$createdAt"}`)
	assert.Contains(t, call.Queries, `{"method":"select","values":["*","deliveryAgents.*"]}`)
	assert.Contains(t, call.Queries, `{"method":"limit","values":[10000000]}`)

	assert.Equal(t, 1, total)
	require.Len(t, records, 1)
	o := records[0].Order
	assert.Equal(t, "o1", o.ID)
	assert.Equal(t, "9876543210", o.PhoneNumber)
	assert.Equal(t, "110", o.TotalAmount.String())
	require.Len(t, o.DeliveryAgents, 1)
	assert.Equal(t, "Ravi", o.DeliveryAgents[0].Name)
	// items y dirección se entregan crudos para que la aplicación los normalice
	assert.Contains(t, string(records[0].ItemsRaw), "Rice")
	assert.Contains(t, string(records[0].ShippingAddressRaw), "Chennai")
}

func TestOrderRepo_Query_SinFiltros(t *testing.T) {
	client, calls := newFakeAppwrite(t, http.StatusOK, `{"total":0,"rows":[]}`)
	repo := appwrite.NewOrderRepository(appwrite.NewTables(client, "db"), "orders")

	records, total, err := repo.Query(context.Background(), repository.OrderQuery{})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, total)
	assert.Len(t, (*calls)[0].Queries, 3)
}

func TestOrderRepo_Query_ErrorRemoto(t *testing.T) {
	client, _ := newFakeAppwrite(t, http.StatusUnauthorized, `{"message":"missing scope","code":401,"type":"general_unauthorized_scope"}`)
	repo := appwrite.NewOrderRepository(appwrite.NewTables(client, "db"), "orders")

	_, _, err := repo.Query(context.Background(), repository.OrderQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Contains(t, err.Error(), "missing scope")
}

// ─────────────────────────────────────────────────────────────────────────────
// Productos
// ─────────────────────────────────────────────────────────────────────────────

func TestProductRepo_List_BusquedaYPaginacion(t *testing.T) {
	resp := `{"total":12,"rows":[{
		"$id":"p1","productName":"Basmati Rice","price":120.5,"discount":10,"stockQuantity":7,
		"productCategoryId":"c1","imageId":"f1",
		"quantityOptions":"[{\"label\":\"5kg\",\"appPrice\":550,\"purchasePrice\":480,\"discount\":20}]"
	}]}`
	client, calls := newFakeAppwrite(t, http.StatusOK, resp)
	repo := appwrite.NewProductRepository(appwrite.NewTables(client, "db"), "products", zerolog.Nop())

	products, total, err := repo.List(context.Background(), repository.ProductQuery{Search: "rice", Offset: 9, Limit: 9})
	require.NoError(t, err)

	q := (*calls)[0].Queries
	assert.Contains(t, q, `{"method":"orderAsc","attribute":"$id"}`)
	assert.Contains(t, q, `{"method":"limit","values":[9]}`)
	assert.Contains(t, q, `{"method":"offset","values":[9]}`)
	assert.Contains(t, q, `{"method":"contains","attribute":"productName","values":["rice"]}`)

	assert.Equal(t, 12, total)
	require.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, 7, p.StockQuantity)
	assert.Equal(t, "110.5", p.FinalPrice().String())
	require.Len(t, p.QuantityOptions, 1)
	assert.Equal(t, "480", p.QuantityOptions[0].PurchasePrice.String())
}

func TestProductRepo_List_QuantityOptionsInvalido(t *testing.T) {
	client, _ := newFakeAppwrite(t, http.StatusOK, `{"total":1,"rows":[{"$id":"p1","quantityOptions":"not json"}]}`)
	repo := appwrite.NewProductRepository(appwrite.NewTables(client, "db"), "products", zerolog.Nop())

	products, _, err := repo.List(context.Background(), repository.ProductQuery{Limit: 9})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Empty(t, products[0].QuantityOptions)
}

func TestProductRepo_GetByID_NoExiste(t *testing.T) {
	client, _ := newFakeAppwrite(t, http.StatusNotFound, `{"message":"Row not found","code":404,"type":"row_not_found"}`)
	repo := appwrite.NewProductRepository(appwrite.NewTables(client, "db"), "products", zerolog.Nop())

	p, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductRepo_Create_SerializaQuantityOptions(t *testing.T) {
	client, calls := newFakeAppwrite(t, http.StatusCreated, `{"$id":"p1","$createdAt":"2025-01-01T00:00:00.000+00:00"}`)
	repo := appwrite.NewProductRepository(appwrite.NewTables(client, "db"), "products", zerolog.Nop())

	p := &entity.Product{ID: "p1", Name: "Dal", CategoryID: "c1", QuantityOptions: []entity.QuantityOption{{Label: "1kg"}}}
	require.NoError(t, repo.Create(context.Background(), p))

	var body struct {
		RowID string         `json:"rowId"`
		Data  map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal((*calls)[0].Body, &body))
	assert.Equal(t, "p1", body.RowID)
	assert.Equal(t, "Dal", body.Data["productName"])
	assert.Equal(t, []any{"c1"}, body.Data["productCategory"])
	encoded, ok := body.Data["quantityOptions"].(string)
	require.True(t, ok, "quantityOptions debe ir como texto JSON")
	assert.Contains(t, encoded, `"label":"1kg"`)
	assert.Equal(t, 2025, p.CreatedAt.Year())
}

// ─────────────────────────────────────────────────────────────────────────────
// Categorías
// ─────────────────────────────────────────────────────────────────────────────

func TestHeaderCategoryRepo_List_RelacionExpandida(t *testing.T) {
	resp := `{"total":2,"rows":[
		{"$id":"h1","isActive":true,"productCategory":{"$id":"c1","categoryName":"Fruits"}},
		{"$id":"h2","isActive":false,"productCategory":null}
	]}`
	client, calls := newFakeAppwrite(t, http.StatusOK, resp)
	repo := appwrite.NewHeaderCategoryRepository(appwrite.NewTables(client, "db"), "header")

	list, err := repo.List(context.Background(), 100)
	require.NoError(t, err)
	assert.Contains(t, (*calls)[0].Queries, `{"method":"select","values":["*","productCategory.*"]}`)
	require.Len(t, list, 2)
	assert.Equal(t, "c1", list[0].CategoryID())
	assert.Equal(t, "Fruits", list[0].ProductCategory.Name)
	assert.Nil(t, list[1].ProductCategory)
}

func TestCategoryRepo_SetActive_DevuelveEstadoRemoto(t *testing.T) {
	// el backend responde false aunque se pidió true
	client, calls := newFakeAppwrite(t, http.StatusOK, `{"$id":"c1","categoryName":"Veg","isActive":false}`)
	repo := appwrite.NewCategoryRepository(appwrite.NewTables(client, "db"), "cats")

	c, err := repo.SetActive(context.Background(), "c1", true)
	require.NoError(t, err)
	assert.False(t, c.IsActive)
	assert.Equal(t, http.MethodPatch, (*calls)[0].Method)
	assert.JSONEq(t, `{"data":{"isActive":true}}`, string((*calls)[0].Body))
}

func TestBodyCategoryRepo_SetProductCategories(t *testing.T) {
	client, calls := newFakeAppwrite(t, http.StatusOK, `{"$id":"b1","bodyCategoryName":"Daily","productCategory":["c1","c2"]}`)
	repo := appwrite.NewBodyCategoryRepository(appwrite.NewTables(client, "db"), "body")

	b, err := repo.SetProductCategories(context.Background(), "b1", []string{"c1", "c2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, b.CategoryIDs())
	assert.JSONEq(t, `{"data":{"productCategory":["c1","c2"]}}`, string((*calls)[0].Body))
}

// ─────────────────────────────────────────────────────────────────────────────
// Carrusel, almacenamiento, funciones y cuentas
// ─────────────────────────────────────────────────────────────────────────────

func TestCarouselRepo_List_FilaInvalidaQuedaVacia(t *testing.T) {
	resp := `{"total":2,"rows":[
		{"$id":"r1","imageId":"f1","image":"[\"https://x/files/f1/view\"]"},
		{"$id":"r2","imageId":"f2","image":"{roto"}
	]}`
	client, _ := newFakeAppwrite(t, http.StatusOK, resp)
	repo := appwrite.NewCarouselRepository(appwrite.NewTables(client, "db"), "carousel", zerolog.Nop())

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"https://x/files/f1/view"}, rows[0].Images)
	assert.Empty(t, rows[1].Images)
}

func TestBucketStorage_Upload(t *testing.T) {
	client, calls := newFakeAppwrite(t, http.StatusCreated, `{"$id":"file-1","bucketId":"b"}`)
	storage := appwrite.NewBucketStorage(client, "b")

	stored, err := storage.Upload(context.Background(), "rice.png", strings.NewReader("PNGDATA"))
	require.NoError(t, err)
	assert.Equal(t, "file-1", stored.ID)
	assert.True(t, strings.HasSuffix(stored.ViewURL, "/v1/storage/buckets/b/files/file-1/view?project=proj"))

	call := (*calls)[0]
	assert.Equal(t, "/v1/storage/buckets/b/files", call.Path)
	assert.True(t, strings.HasPrefix(call.Header.Get("Content-Type"), "multipart/form-data"))
	assert.Contains(t, string(call.Body), "PNGDATA")
	assert.Contains(t, string(call.Body), `name="fileId"`)
}

func TestBucketStorage_FileIDFromURL(t *testing.T) {
	storage := appwrite.NewBucketStorage(appwrite.NewClient(config.AppwriteConfig{}), "b")

	assert.Equal(t, "abc", storage.FileIDFromURL("https://cloud.appwrite.io/v1/storage/buckets/b/files/abc/view?project=p"))
	assert.Equal(t, "abc", storage.FileIDFromURL("https://cloud.appwrite.io/v1/storage/buckets/b/files/abc?project=p"))
	assert.Equal(t, "", storage.FileIDFromURL("https://example.com/img.png"))
}

func TestPushNotifier_Send(t *testing.T) {
	client, calls := newFakeAppwrite(t, http.StatusCreated, `{"$id":"exec-1","status":"completed","responseStatusCode":200}`)
	notifier := appwrite.NewPushNotifier(client, "fn")

	id, err := notifier.Send(context.Background(), entity.Notification{Title: "Oferta", Body: "20% hoy"})
	require.NoError(t, err)
	assert.Equal(t, "exec-1", id)

	var body struct {
		Body  string `json:"body"`
		Async bool   `json:"async"`
	}
	require.NoError(t, json.Unmarshal((*calls)[0].Body, &body))
	assert.JSONEq(t, `{"title":"Oferta","body":"20% hoy"}`, body.Body)
	assert.False(t, body.Async)
}

func TestPushNotifier_Send_EjecucionFallida(t *testing.T) {
	client, _ := newFakeAppwrite(t, http.StatusCreated, `{"$id":"exec-1","status":"failed","responseStatusCode":500,"errors":"boom"}`)
	notifier := appwrite.NewPushNotifier(client, "fn")

	_, err := notifier.Send(context.Background(), entity.Notification{Title: "a", Body: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestAccounts_Get_UsaSesion(t *testing.T) {
	client, calls := newFakeAppwrite(t, http.StatusOK, `{"$id":"u1","email":"a@b.c","labels":["AdminMart"]}`)
	accounts := appwrite.NewAccounts(client)

	user, err := accounts.Get(context.Background(), "sess-secret")
	require.NoError(t, err)
	assert.True(t, user.HasLabel("AdminMart"))
	assert.Equal(t, "sess-secret", (*calls)[0].Header.Get("X-Appwrite-Session"))
	assert.Empty(t, (*calls)[0].Header.Get("X-Appwrite-Key"))
}
