// Package xlsx exporta los reportes como libro de Excel, una hoja por sección.
package xlsx

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/application/reports"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
)

// Nombres de las hojas.
const (
	SheetSummary   = "Resumen"
	SheetOccupancy = "Ocupación"
	SheetRevenue   = "Ingresos"
	SheetGuests    = "Huéspedes"
	SheetInventory = "Inventario"
	SheetAlerts    = "Alertas"
)

var _ reports.Exporter = (*WorkbookExporter)(nil)

// WorkbookExporter implementa reports.Exporter con excelize.
type WorkbookExporter struct{}

// NewWorkbookExporter construye el exportador.
func NewWorkbookExporter() *WorkbookExporter { return &WorkbookExporter{} }

// Export arma el libro y devuelve los bytes del .xlsx.
func (e *WorkbookExporter) Export(sum metrics.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	w := &writer{f: f}
	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	w.bold = bold

	w.summary(sum)
	if sum.ReportType == metrics.ReportGeneral || sum.ReportType == metrics.ReportOccupancy {
		w.occupancy(sum.Occupancy)
	}
	if sum.ReportType == metrics.ReportGeneral || sum.ReportType == metrics.ReportRevenue {
		w.revenue(sum.Revenue)
	}
	if sum.ReportType == metrics.ReportGeneral || sum.ReportType == metrics.ReportGuests {
		w.guests(sum.Guests)
	}
	if sum.ReportType == metrics.ReportGeneral || sum.ReportType == metrics.ReportInventory {
		w.inventory(sum.Inventory)
	}
	w.alerts(sum)
	if w.err != nil {
		return nil, fmt.Errorf("xlsx: %w", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// writer acumula el primer error para no cortar el flujo en cada celda.
type writer struct {
	f    *excelize.File
	bold int
	err  error
}

func (w *writer) sheet(name string, widths ...float64) {
	if w.err != nil {
		return
	}
	if idx, _ := w.f.GetSheetIndex(name); idx < 0 {
		if _, w.err = w.f.NewSheet(name); w.err != nil {
			return
		}
	}
	for i, width := range widths {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			w.err = err
			return
		}
		if w.err = w.f.SetColWidth(name, colName, colName, width); w.err != nil {
			return
		}
	}
}

// row escribe values a partir de la columna A de la fila n (1-based).
func (w *writer) row(sheet string, n int, values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

// header fila en negrita.
func (w *writer) header(sheet string, n int, labels ...any) {
	w.row(sheet, n, labels...)
	if w.err != nil || len(labels) == 0 {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, n)
	last, _ := excelize.CoordinatesToCellName(len(labels), n)
	w.err = w.f.SetCellStyle(sheet, first, last, w.bold)
}

func (w *writer) summary(sum metrics.Summary) {
	s := SheetSummary
	w.sheet(s, 28, 22)
	w.header(s, 1, sum.Title)
	w.row(s, 2, "Período", sum.Period.Label)
	w.row(s, 3, "Desde", sum.Period.Current.Start.Format("2006-01-02"))
	w.row(s, 4, "Hasta", sum.Period.Current.End.Format("2006-01-02"))
	w.row(s, 5, "Emitido", sum.GeneratedAt.Format("2006-01-02 15:04"))
	w.row(s, 6, "Datos incompletos", yesNo(sum.Degraded))

	w.header(s, 8, "Indicador", "Valor")
	kpis := []struct {
		label string
		value any
	}{
		{"Ocupación %", num(sum.Occupancy.Rate)},
		{"Ingresos", num(sum.Revenue.Total)},
		{"Ingresos período anterior", num(sum.Revenue.PriorTotal)},
		{"Variación %", num(sum.Revenue.GrowthPercent)},
		{"ADR", num(sum.Revenue.ADR)},
		{"RevPAR", num(sum.Revenue.RevPAR)},
		{"Huéspedes únicos", sum.Guests.UniqueGuests},
		{"Artículos con stock bajo", sum.Inventory.LowStockCount},
	}
	for i, k := range kpis {
		w.row(s, 9+i, k.label, k.value)
	}
}

func (w *writer) occupancy(o metrics.OccupancySummary) {
	s := SheetOccupancy
	w.sheet(s, 22, 12, 12, 12, 12)
	w.header(s, 1, "Tipo", "Total", "Ocupadas", "Disponibles", "Ocupación %")
	n := 2
	for _, t := range o.ByRoomType {
		w.row(s, n, t.RoomType, t.Total, t.Occupied, t.Available, num(t.Rate))
		n++
	}
	w.row(s, n, "Total", o.Total, o.Occupied, o.Available, num(o.Rate))
	n += 2

	w.header(s, n, "Fecha", "Ocupadas", "Ocupación %")
	n++
	for _, p := range o.Trend {
		w.row(s, n, p.Date, p.Occupied, num(p.Rate))
		n++
	}
	n++
	w.row(s, n, "Promedio %", num(o.TrendStats.Avg))
	w.row(s, n+1, "Máximo %", num(o.TrendStats.Max))
	w.row(s, n+2, "Mínimo %", num(o.TrendStats.Min))
}

func (w *writer) revenue(r metrics.RevenueSummary) {
	s := SheetRevenue
	w.sheet(s, 26, 14, 10, 8)
	w.header(s, 1, "Categoría", "Monto", "Cantidad", "%")
	n := 2
	for _, c := range r.ByCategory {
		w.row(s, n, c.Name, num(c.Amount), c.Count, c.Percentage)
		n++
	}
	w.row(s, n, "Total", num(r.Total), r.CompletedCount, 100)
	n += 2

	w.header(s, n, "Tipo de habitación", "Monto", "Estadías", "%")
	n++
	for _, c := range r.ByRoomType {
		w.row(s, n, c.Name, num(c.Amount), c.Count, c.Percentage)
		n++
	}
}

func (w *writer) guests(g metrics.GuestSummary) {
	s := SheetGuests
	w.sheet(s, 26, 12)
	w.header(s, 1, "Indicador", "Valor")
	w.row(s, 2, "Registrados", g.TotalRegistered)
	w.row(s, 3, "Únicos en el período", g.UniqueGuests)
	w.row(s, 4, "Nuevos", g.NewGuests)
	w.row(s, 5, "Recurrentes", g.ReturningGuests)
	w.row(s, 6, "Estadía promedio (noches)", num(g.AverageStayNights))
}

func (w *writer) inventory(inv metrics.InventorySummary) {
	s := SheetInventory
	w.sheet(s, 26, 18, 10, 10, 12)
	w.header(s, 1, "Artículo", "Categoría", "Stock", "Mínimo", "Severidad")
	n := 2
	for _, it := range inv.LowStock {
		w.row(s, n, it.Name, it.Category, it.CurrentStock, it.MinStock, string(it.Severity))
		n++
	}
	n++
	w.header(s, n, "Categoría", "Valor", "Artículos", "%")
	n++
	for _, c := range inv.ByCategory {
		w.row(s, n, c.Name, num(c.Amount), c.Count, c.Percentage)
		n++
	}
	n++
	w.row(s, n, "Valor total insumos", num(inv.TotalValue))
	w.row(s, n+1, "Valor total tienda", num(inv.Snacks.TotalValue))
}

func (w *writer) alerts(sum metrics.Summary) {
	s := SheetAlerts
	w.sheet(s, 10, 16, 80)
	w.header(s, 1, "Tipo", "Categoría", "Mensaje")
	n := 2
	for _, a := range sum.Alerts {
		w.row(s, n, string(a.Type), a.Category, a.Message)
		n++
	}
	for _, msg := range sum.Warnings {
		w.row(s, n, "nota", "", msg)
		n++
	}
}

func num(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
