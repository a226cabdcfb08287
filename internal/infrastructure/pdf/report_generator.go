// Package pdf genera la versión imprimible de los reportes del hotel.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte   │  Período + fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ocupación | Ingresos | ADR | RevPAR | Huéspedes        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIONES según el tipo de reporte (tablas)                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS y advertencias                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

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

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/application/reports"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 190, Green: 90, Blue: 0}
	colorSuccess = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.Exporter = (*ReportGenerator)(nil)

// ReportGenerator implementa reports.Exporter usando Maroto v2.
type ReportGenerator struct {
	hotelName string
}

// NewReportGenerator construye el generador. hotelName aparece como autor y en el encabezado.
func NewReportGenerator(hotelName string) *ReportGenerator {
	return &ReportGenerator{hotelName: hotelName}
}

// Export genera el PDF del resumen y devuelve sus bytes.
func (g *ReportGenerator) Export(sum metrics.Summary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(sum.Title, true).
		WithAuthor(nonEmpty(g.hotelName, "Hotel"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.hotelName, sum))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(sum))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, r := range sectionRows(sum) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	for _, r := range alertRows(sum) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(hotel string, sum metrics.Summary) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(sum.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(hotel, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(sum.Period.Label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Emitido: "+sum.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// kpiRow: cinco indicadores principales.
func kpiRow(sum metrics.Summary) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 2, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 7, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		col.New(1),
		kpi("Ocupación", formatPercent(sum.Occupancy.Rate)),
		kpi("Ingresos", formatMoney(sum.Revenue.Total)),
		kpi("ADR", formatMoney(sum.Revenue.ADR)),
		kpi("RevPAR", formatMoney(sum.Revenue.RevPAR)),
		kpi("Huéspedes", strconv.Itoa(sum.Guests.UniqueGuests)),
		col.New(1),
	)
}

func sectionRows(sum metrics.Summary) []core.Row {
	var rows []core.Row
	switch sum.ReportType {
	case metrics.ReportOccupancy:
		rows = append(rows, occupancyRows(sum.Occupancy)...)
	case metrics.ReportRevenue:
		rows = append(rows, revenueRows(sum.Revenue)...)
	case metrics.ReportGuests:
		rows = append(rows, guestRows(sum.Guests)...)
	case metrics.ReportInventory:
		rows = append(rows, inventoryRows(sum.Inventory)...)
	default:
		rows = append(rows, occupancyRows(sum.Occupancy)...)
		rows = append(rows, revenueRows(sum.Revenue)...)
		rows = append(rows, guestRows(sum.Guests)...)
		rows = append(rows, inventoryRows(sum.Inventory)...)
	}
	return rows
}

func occupancyRows(o metrics.OccupancySummary) []core.Row {
	rows := []core.Row{
		sectionTitle("OCUPACIÓN", o.Degraded),
		keyValueRow(
			"Habitaciones", strconv.Itoa(o.Total),
			"Ocupadas", strconv.Itoa(o.Occupied),
			"Mantenimiento", strconv.Itoa(o.Maintenance),
		),
		keyValueRow(
			"Promedio diario", formatPercent(o.TrendStats.Avg),
			"Máximo", formatPercent(o.TrendStats.Max),
			"Mínimo", formatPercent(o.TrendStats.Min),
		),
		tableHeader([]string{"Tipo", "Total", "Ocupadas", "Disponibles", "Ocupación"}, []int{4, 2, 2, 2, 2}),
	}
	for _, t := range o.ByRoomType {
		rows = append(rows, tableRow([]string{
			t.RoomType, strconv.Itoa(t.Total), strconv.Itoa(t.Occupied), strconv.Itoa(t.Available), formatPercent(t.Rate),
		}, []int{4, 2, 2, 2, 2}))
	}
	return rows
}

func revenueRows(r metrics.RevenueSummary) []core.Row {
	rows := []core.Row{
		sectionTitle("INGRESOS", r.Degraded),
		keyValueRow(
			"Período anterior", formatMoney(r.PriorTotal),
			"Variación", formatPercent(r.GrowthPercent),
			"Estadías completadas", strconv.Itoa(r.CompletedCount),
		),
		tableHeader([]string{"Categoría", "Monto", "Cantidad", "%"}, []int{5, 3, 2, 2}),
	}
	for _, c := range append(append([]metrics.CategoryShare{}, r.ByCategory...), r.ByRoomType...) {
		rows = append(rows, tableRow([]string{
			c.Name, formatMoney(c.Amount), strconv.Itoa(c.Count), strconv.Itoa(c.Percentage) + "%",
		}, []int{5, 3, 2, 2}))
	}
	return rows
}

func guestRows(g metrics.GuestSummary) []core.Row {
	return []core.Row{
		sectionTitle("HUÉSPEDES", g.Degraded),
		keyValueRow(
			"Registrados", strconv.Itoa(g.TotalRegistered),
			"Nuevos", strconv.Itoa(g.NewGuests),
			"Recurrentes", strconv.Itoa(g.ReturningGuests),
		),
		keyValueRow(
			"Únicos en el período", strconv.Itoa(g.UniqueGuests),
			"Estadía promedio", formatNumber(g.AverageStayNights, 1)+" noches",
			"", "",
		),
	}
}

func inventoryRows(inv metrics.InventorySummary) []core.Row {
	rows := []core.Row{
		sectionTitle("INVENTARIO", inv.Degraded),
		keyValueRow(
			"Insumos", strconv.Itoa(inv.TotalItems),
			"Valor total", formatMoney(inv.TotalValue),
			"Stock bajo", fmt.Sprintf("%d (%d críticos)", inv.LowStockCount, inv.CriticalCount),
		),
		keyValueRow(
			"Sin stock", strconv.Itoa(inv.OutOfStockCount),
			"Productos de tienda", strconv.Itoa(inv.Snacks.TotalItems),
			"Valor tienda", formatMoney(inv.Snacks.TotalValue),
		),
	}
	if len(inv.LowStock) > 0 {
		rows = append(rows, tableHeader([]string{"Artículo", "Categoría", "Stock", "Mínimo", "Severidad"}, []int{4, 3, 1, 2, 2}))
		for _, it := range inv.LowStock {
			rows = append(rows, tableRow([]string{
				it.Name, it.Category, strconv.Itoa(it.CurrentStock), strconv.Itoa(it.MinStock), severityLabel(it.Severity),
			}, []int{4, 3, 1, 2, 2}))
		}
	}
	return rows
}

func alertRows(sum metrics.Summary) []core.Row {
	if len(sum.Alerts) == 0 && len(sum.Warnings) == 0 {
		return nil
	}
	rows := []core.Row{sectionTitle("ALERTAS", false)}
	for _, a := range sum.Alerts {
		color := colorGray
		switch a.Type {
		case metrics.AlertWarning:
			color = colorWarning
		case metrics.AlertSuccess:
			color = colorSuccess
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("• "+a.Message, props.Text{Size: 8, Color: color, Top: 0.5, Left: 2}),
		)))
	}
	for _, w := range sum.Warnings {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Nota: "+w, props.Text{Size: 7, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}

// ── helpers de layout ─────────────────────────────────────────────────────────

func sectionTitle(title string, degraded bool) core.Row {
	if degraded {
		title += " (datos incompletos)"
	}
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

func keyValueRow(pairs ...string) core.Row {
	r := row.New(7)
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Add(
			col.New(2).Add(text.New(pairs[i], props.Text{Size: 8, Color: colorGray, Top: 1})),
			col.New(2).Add(text.New(pairs[i+1], props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
		)
	}
	return r
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

func tableRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func severityLabel(s metrics.StockSeverity) string {
	if s == metrics.SeverityCritical {
		return "Crítico"
	}
	return "Bajo"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
