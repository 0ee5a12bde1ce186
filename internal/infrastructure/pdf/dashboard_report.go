// Package pdf genera el reporte PDF del dashboard de pedidos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + filtro aplicado │ fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: pedidos / ingresos / repartidores / tienda / util │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Cliente | Estado | Ingreso | Costo tienda   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appanalytics "github.com/jhoicas/rasan-admin-api/internal/application/analytics"
	domanalytics "github.com/jhoicas/rasan-admin-api/internal/domain/analytics"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

var _ appanalytics.ReportGenerator = (*MarotoReportGenerator)(nil)

// maxTableRows tope de filas de detalle; el resumen siempre cubre todos los pedidos.
const maxTableRows = 500

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 110, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador. author aparece en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// GenerateDashboardReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDashboardReport(_ context.Context, data appanalytics.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(data.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(data.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(data.Orders)...)
	if len(data.Orders) > maxTableRows {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("… y %d pedidos más (incluidos en el resumen)", len(data.Orders)-maxTableRows),
				props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + filtro (izq) y fecha de generación (der).
func headerRow(data appanalytics.ReportData) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(nonEmpty(data.Title, "Reporte de pedidos"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(data.FilterLabel, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRows: una tarjeta por métrica.
func summaryRows(s domanalytics.FormattedSummary) []core.Row {
	card := func(label, value string, size int) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 2, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 7, Align: align.Center}),
		)
	}
	return []core.Row{
		row.New(16).Add(
			card("Pedidos", fmt.Sprintf("%d", s.TotalOrders), 2),
			card("Ingresos", formatMoney(s.TotalEarnings), 3),
			card("Repartidores", formatMoney(s.TotalDeliveryAgentFee), 2),
			card("Costo tienda", formatMoney(s.TotalRestaurantRevenue), 3),
			card("Utilidad", formatMoney(s.TotalProfit), 2),
		),
	}
}

// tableHeaderRow: cabecera de la tabla de pedidos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Cliente", 4, align.Left),
		h("Estado", 2, align.Center),
		h("Ingreso", 2, align.Right),
		h("Costo tienda", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por pedido hasta maxTableRows.
func tableDetailRows(orders []entity.Order) []core.Row {
	n := len(orders)
	if n > maxTableRows {
		n = maxTableRows
	}
	result := make([]core.Row, 0, n)
	for i := 0; i < n; i++ {
		o := &orders[i]
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(o.CreatedAt.Format("02/01/2006"),
				props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(nonEmpty(o.CustomerName, "—"),
				props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(o.Status, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(domanalytics.Earnings(o).StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(domanalytics.PurchaseCost(o).StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney agrega separadores de miles a un importe con dos decimales.
// Ej: "1234567.50" → "Rs. 1,234,567.50", "-25.00" → "Rs. -25.00"
func formatMoney(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	out := "Rs. " + sign + string(buf)
	if hasFrac {
		out += "." + frac
	}
	return out
}
