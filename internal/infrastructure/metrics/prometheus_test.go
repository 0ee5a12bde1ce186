package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rasan-admin-api/internal/infrastructure/metrics"
)

func TestMetrics_RecordSupersededYFetch(t *testing.T) {
	m := metrics.New("test")

	m.RecordSuperseded("dashboard")
	m.RecordSuperseded("dashboard")
	m.RecordFetch("product_feed", "ok")

	out, err := testutil.GatherAndCount(m.Registry(), "test_superseded_results_total", "test_fetches_total")
	require.NoError(t, err)
	assert.Equal(t, 2, out)
}

func TestMetrics_ObserveUpstream(t *testing.T) {
	m := metrics.New("test")

	m.ObserveUpstream("tablesdb", "GET", 20*time.Millisecond, nil)
	m.ObserveUpstream("tablesdb", "GET", 20*time.Millisecond, errors.New("boom"))

	n, err := testutil.GatherAndCount(m.Registry(), "test_appwrite_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n) // una serie por resultado
}

func TestMetrics_MiddlewareYHandler(t *testing.T) {
	m := metrics.New("test")
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/products/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products/p1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `test_http_requests_total{method="GET",path="/api/products/:id",status="200"} 1`)
}
