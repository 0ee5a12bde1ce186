// Package analytics contiene los casos de uso del dashboard de pedidos: el controlador
// de filtros por administrador, el resumen sin estado y el reporte PDF.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/rasan-admin-api/internal/application/orders"
	"github.com/jhoicas/rasan-admin-api/internal/domain"
	domanalytics "github.com/jhoicas/rasan-admin-api/internal/domain/analytics"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// ReportData contenido del reporte PDF del dashboard.
type ReportData struct {
	Title       string
	FilterLabel string
	GeneratedAt time.Time
	Summary     domanalytics.FormattedSummary
	Orders      []entity.Order
}

// ReportGenerator puerto de salida para el PDF del dashboard.
type ReportGenerator interface {
	GenerateDashboardReport(ctx context.Context, data ReportData) ([]byte, error)
}

// SummaryQuery filtros del resumen sin estado. Start/End en formato YYYY-MM-DD (solo modo custom).
type SummaryQuery struct {
	Mode   DateMode
	Start  string
	End    string
	Status string
}

// DashboardSummary resultado de una consulta puntual del dashboard.
type DashboardSummary struct {
	FilterLabel string
	Summary     domanalytics.FormattedSummary
	Orders      []entity.Order
	Total       int
}

// DashboardUseCase resumen del dashboard sin estado de sesión y generación del reporte.
type DashboardUseCase struct {
	source  OrderSource
	reports ReportGenerator
	loc     *time.Location
	now     func() time.Time
}

// NewDashboardUseCase construye el caso de uso. loc define qué es "hoy".
func NewDashboardUseCase(source OrderSource, reports ReportGenerator, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardUseCase{source: source, reports: reports, loc: loc, now: time.Now}
}

// Summary ejecuta una consulta puntual. En modo custom ambos extremos son obligatorios.
func (uc *DashboardUseCase) Summary(ctx context.Context, q SummaryQuery) (*DashboardSummary, error) {
	if q.Mode == "" {
		q.Mode = DateModeToday
	}
	if q.Status == "" {
		q.Status = orders.StatusAll
	}

	var start, end *time.Time
	switch q.Mode {
	case DateModeToday:
		s, e := DayBounds(uc.now(), uc.loc)
		start, end = &s, &e
	case DateModeAll:
	case DateModeCustom:
		if q.Start == "" || q.End == "" {
			return nil, fmt.Errorf("%w: el rango personalizado requiere start y end", domain.ErrInvalidInput)
		}
		s, err := time.ParseInLocation(DateLayout, q.Start, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: start debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		e, err := time.ParseInLocation(DateLayout, q.End, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: end debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		s, _ = DayBounds(s, uc.loc)
		_, e = DayBounds(e, uc.loc)
		start, end = &s, &e
	default:
		return nil, fmt.Errorf("%w: range debe ser today, all o custom", domain.ErrInvalidInput)
	}

	res := uc.source.FetchOrders(ctx, start, end, q.Status)
	if !res.Success {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, res.Error)
	}
	return &DashboardSummary{
		FilterLabel: FilterLabel(q.Mode, q.Status, q.Start, q.End),
		Summary:     domanalytics.Aggregate(res.Orders).Format(),
		Orders:      res.Orders,
		Total:       res.Total,
	}, nil
}

// Report genera el PDF a partir del estado actual del controlador del administrador.
func (uc *DashboardUseCase) Report(ctx context.Context, st State) ([]byte, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("generador de reportes no configurado")
	}
	return uc.reports.GenerateDashboardReport(ctx, ReportData{
		Title:       "Reporte de pedidos",
		FilterLabel: st.FilterLabel,
		GeneratedAt: uc.now().In(uc.loc),
		Summary:     st.Summary,
		Orders:      st.Orders,
	})
}
