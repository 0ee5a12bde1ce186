package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/rasan-admin-api/internal/application/orders"
	"github.com/jhoicas/rasan-admin-api/internal/application/ports"
	domanalytics "github.com/jhoicas/rasan-admin-api/internal/domain/analytics"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// DateMode modo de rango de fechas del dashboard.
type DateMode string

const (
	DateModeToday  DateMode = "today"
	DateModeCustom DateMode = "custom"
	DateModeAll    DateMode = "all"
)

// DateLayout formato de las fechas de calendario del rango personalizado.
const DateLayout = "2006-01-02"

const component = "dashboard"

// OrderSource fuente de pedidos (orders.Fetcher en producción).
type OrderSource interface {
	FetchOrders(ctx context.Context, start, end *time.Time, status string) orders.FetchResult
}

// State foto inmutable del controlador.
type State struct {
	DateMode     DateMode
	PendingStart string // rango personalizado escrito por el usuario (puede estar incompleto)
	PendingEnd   string
	RangeStart   string // rango personalizado efectivamente aplicado
	RangeEnd     string
	Status       string
	Loading      bool
	Error        string
	Orders       []entity.Order
	Summary      domanalytics.FormattedSummary
	FilterLabel  string
	Fetched      bool // al menos una carga completó
}

// FilterController estado de filtros del dashboard de un administrador.
// Cada transición que cambia la consulta efectiva emite exactamente una carga; solo se aplica
// el resultado de la carga más reciente.
type FilterController struct {
	source  OrderSource
	loc     *time.Location
	now     func() time.Time
	log     zerolog.Logger
	metrics ports.MetricsRecorder

	mu           sync.Mutex
	mode         DateMode
	pendingStart string
	pendingEnd   string
	rangeStart   string
	rangeEnd     string
	status       string
	token        uint64
	loading      bool
	issued       bool
	fetched      bool
	errMsg       string
	orders       []entity.Order
	summary      domanalytics.FormattedSummary
}

// Option configura el controlador.
type Option func(*FilterController)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(c *FilterController) { c.now = now }
}

// NewFilterController crea el controlador en modo "hoy", estado "all", sin carga emitida.
func NewFilterController(source OrderSource, loc *time.Location, log zerolog.Logger, metrics ports.MetricsRecorder, opts ...Option) *FilterController {
	if loc == nil {
		loc = time.Local
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	c := &FilterController{
		source:  source,
		loc:     loc,
		now:     time.Now,
		log:     log,
		metrics: metrics,
		mode:    DateModeToday,
		status:  orders.StatusAll,
		orders:  []entity.Order{},
		summary: domanalytics.Aggregate(nil).Format(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SelectToday pasa a modo hoy y recarga.
func (c *FilterController) SelectToday(ctx context.Context) State {
	c.mu.Lock()
	c.mode = DateModeToday
	return c.fetchLocked(ctx)
}

// SelectAllTime pasa a modo histórico completo y recarga.
func (c *FilterController) SelectAllTime(ctx context.Context) State {
	c.mu.Lock()
	c.mode = DateModeAll
	return c.fetchLocked(ctx)
}

// SetCustomRange guarda el rango pendiente (fechas YYYY-MM-DD, vacío = sin fijar).
// No cambia de modo; si ya se está en modo personalizado y el rango queda completo, recarga.
func (c *FilterController) SetCustomRange(ctx context.Context, start, end string) (State, error) {
	for _, d := range []string{start, end} {
		if d == "" {
			continue
		}
		if _, err := time.ParseInLocation(DateLayout, d, c.loc); err != nil {
			return c.Snapshot(), fmt.Errorf("fecha %q inválida, se espera YYYY-MM-DD: %w", d, err)
		}
	}

	c.mu.Lock()
	c.pendingStart, c.pendingEnd = start, end
	if c.mode == DateModeCustom && start != "" && end != "" {
		c.rangeStart, c.rangeEnd = start, end
		return c.fetchLocked(ctx), nil
	}
	st := c.snapshotLocked()
	c.mu.Unlock()
	return st, nil
}

// ApplyCustom activa el rango pendiente. Con algún extremo vacío no hace nada:
// ni carga, ni error, ni cambio de modo.
func (c *FilterController) ApplyCustom(ctx context.Context) State {
	c.mu.Lock()
	if c.pendingStart == "" || c.pendingEnd == "" {
		st := c.snapshotLocked()
		c.mu.Unlock()
		return st
	}
	c.mode = DateModeCustom
	c.rangeStart, c.rangeEnd = c.pendingStart, c.pendingEnd
	return c.fetchLocked(ctx)
}

// SetStatus cambia el filtro de estado ("all" = todos) y recarga.
func (c *FilterController) SetStatus(ctx context.Context, status string) State {
	if status == "" {
		status = orders.StatusAll
	}
	c.mu.Lock()
	c.status = status
	return c.fetchLocked(ctx)
}

// Refresh reemite la consulta actual (reintento manual).
func (c *FilterController) Refresh(ctx context.Context) State {
	c.mu.Lock()
	return c.fetchLocked(ctx)
}

// EnsureLoaded emite la primera carga si nunca se emitió ninguna.
func (c *FilterController) EnsureLoaded(ctx context.Context) State {
	c.mu.Lock()
	if c.issued {
		st := c.snapshotLocked()
		c.mu.Unlock()
		return st
	}
	return c.fetchLocked(ctx)
}

// Snapshot devuelve el estado actual sin emitir cargas.
func (c *FilterController) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// fetchLocked se llama con c.mu tomado y lo libera. Emite la carga con un token nuevo
// fuera del lock y aplica el resultado solo si el token sigue siendo el último.
func (c *FilterController) fetchLocked(ctx context.Context) State {
	c.token++
	token := c.token
	c.issued = true
	c.loading = true
	start, end := c.boundsLocked()
	status := c.status
	c.mu.Unlock()

	res := c.source.FetchOrders(ctx, start, end, status)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.token {
		c.metrics.RecordSuperseded(component)
		c.log.Debug().Uint64("token", token).Uint64("latest", c.token).Msg("resultado de pedidos descartado")
		return c.snapshotLocked()
	}
	c.loading = false
	c.fetched = true
	if !res.Success {
		// se conserva el último resultado válido
		c.errMsg = res.Error
		return c.snapshotLocked()
	}
	c.errMsg = ""
	c.orders = res.Orders
	c.summary = domanalytics.Aggregate(res.Orders).Format()
	return c.snapshotLocked()
}

// boundsLocked traduce el modo a límites de la consulta.
func (c *FilterController) boundsLocked() (*time.Time, *time.Time) {
	switch c.mode {
	case DateModeToday:
		start, end := DayBounds(c.now(), c.loc)
		return &start, &end
	case DateModeCustom:
		s, errS := time.ParseInLocation(DateLayout, c.rangeStart, c.loc)
		e, errE := time.ParseInLocation(DateLayout, c.rangeEnd, c.loc)
		if errS != nil || errE != nil {
			return nil, nil
		}
		start, _ := DayBounds(s, c.loc)
		_, end := DayBounds(e, c.loc)
		return &start, &end
	default:
		return nil, nil
	}
}

func (c *FilterController) snapshotLocked() State {
	list := make([]entity.Order, len(c.orders))
	copy(list, c.orders)
	return State{
		DateMode:     c.mode,
		PendingStart: c.pendingStart,
		PendingEnd:   c.pendingEnd,
		RangeStart:   c.rangeStart,
		RangeEnd:     c.rangeEnd,
		Status:       c.status,
		Loading:      c.loading,
		Error:        c.errMsg,
		Orders:       list,
		Summary:      c.summary,
		FilterLabel:  FilterLabel(c.mode, c.status, c.rangeStart, c.rangeEnd),
		Fetched:      c.fetched,
	}
}

// DayBounds devuelve [00:00:00.000, 23:59:59.999999999] del día de t en loc.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// FilterLabel texto descriptivo del filtro, ej. "Status: Delivered, Dates: Today".
func FilterLabel(mode DateMode, status, rangeStart, rangeEnd string) string {
	statusText := "All Statuses"
	if status != "" && status != orders.StatusAll {
		// un Caser no puede compartirse entre goroutines
		statusText = cases.Title(language.English, cases.NoLower).String(status)
	}
	var dateText string
	switch {
	case mode == DateModeToday:
		dateText = "Today"
	case mode == DateModeAll:
		dateText = "All Time"
	case rangeStart != "" && rangeEnd != "":
		dateText = rangeStart + " to " + rangeEnd
	default:
		dateText = "Custom Range"
	}
	return fmt.Sprintf("Status: %s, Dates: %s", statusText, dateText)
}
