// Package metrics expone métricas Prometheus de la API y de las llamadas a Appwrite.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/rasan-admin-api/internal/application/ports"
	"github.com/jhoicas/rasan-admin-api/internal/infrastructure/appwrite"
)

var (
	_ ports.MetricsRecorder  = (*Metrics)(nil)
	_ appwrite.CallObserver = (*Metrics)(nil)
)

// Metrics colectores registrados en un Registry propio.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge
	upstreamTotal        *prometheus.CounterVec
	upstreamDuration     *prometheus.HistogramVec
	fetchesTotal         *prometheus.CounterVec
	supersededTotal      *prometheus.CounterVec
}

// New registra los colectores bajo namespace (por defecto "rasan_admin").
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = "rasan_admin"
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total de peticiones HTTP atendidas",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duración de las peticiones HTTP en segundos",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		httpRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Peticiones HTTP en curso",
			},
		),
		upstreamTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "appwrite_requests_total",
				Help:      "Llamadas a Appwrite por servicio y resultado",
			},
			[]string{"service", "method", "result"},
		),
		upstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "appwrite_request_duration_seconds",
				Help:      "Duración de las llamadas a Appwrite en segundos",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"service", "method"},
		),
		fetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetches_total",
				Help:      "Cargas de pedidos y productos por componente y resultado",
			},
			[]string{"component", "result"},
		),
		supersededTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "superseded_results_total",
				Help:      "Resultados descartados por existir una petición más reciente",
			},
			[]string{"component"},
		),
	}
}

// Registry expone el registro (tests y handlers).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveUpstream implementa appwrite.CallObserver.
func (m *Metrics) ObserveUpstream(service, method string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.upstreamTotal.WithLabelValues(service, method, result).Inc()
	m.upstreamDuration.WithLabelValues(service, method).Observe(d.Seconds())
}

func (m *Metrics) RecordFetch(component, result string) {
	m.fetchesTotal.WithLabelValues(component, result).Inc()
}

func (m *Metrics) RecordSuperseded(component string) {
	m.supersededTotal.WithLabelValues(component).Inc()
}

// Middleware registra cada petición usando la ruta declarada (no la URL) como etiqueta.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.httpRequestsInFlight.Inc()
		defer m.httpRequestsInFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		if path == "" {
			path = "unmatched"
		}
		method := c.Method()
		m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler sirve /metrics en formato de exposición de Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
