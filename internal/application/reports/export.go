package reports

import (
	"fmt"
	"strings"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
)

// Format formato de salida de un reporte.
type Format string

const (
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat acepta json, pdf, xlsx (y excel como alias); vacío es json.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, true
	case "pdf":
		return FormatPDF, true
	case "xlsx", "excel":
		return FormatXLSX, true
	}
	return "", false
}

// ContentType tipo MIME del formato.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Exporter serializa un resumen en un formato de archivo.
type Exporter interface {
	Export(sum metrics.Summary) ([]byte, error)
}

// ExporterFunc adapta una función a Exporter.
type ExporterFunc func(sum metrics.Summary) ([]byte, error)

// Export implementa Exporter.
func (f ExporterFunc) Export(sum metrics.Summary) ([]byte, error) { return f(sum) }

// Filename nombre de descarga, ej. reporte-occupancy-20250601-20250630.pdf.
func Filename(sum metrics.Summary, f Format) string {
	w := sum.Period.Current
	return fmt.Sprintf("reporte-%s-%s-%s.%s",
		sum.ReportType, w.Start.Format("20060102"), w.End.Format("20060102"), f)
}
