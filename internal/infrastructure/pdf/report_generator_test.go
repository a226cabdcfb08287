package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/infrastructure/pdf"
)

func summary(rt metrics.ReportType) metrics.Summary {
	cfg := metrics.DefaultConfig()
	now := time.Date(2025, time.June, 20, 9, 0, 0, 0, time.UTC)
	snap := metrics.Snapshot{
		Rooms: []entity.Room{{ID: "101", RoomType: "Doble", Status: entity.RoomOccupied}},
		Items: []entity.InventoryItem{{ID: "i1", Name: "Toallas", Category: "Lencería", CurrentStock: 1, MinStock: 10}},
	}
	return cfg.Assemble(rt, cfg.Resolve(metrics.PeriodRequest{Name: "this_month"}, now), snap, now)
}

func TestExport_GeneraPDFParaCadaTipo(t *testing.T) {
	g := pdf.NewReportGenerator("Hotel Demo")
	for _, rt := range []metrics.ReportType{
		metrics.ReportGeneral, metrics.ReportOccupancy, metrics.ReportRevenue, metrics.ReportGuests, metrics.ReportInventory,
	} {
		t.Run(string(rt), func(t *testing.T) {
			b, err := g.Export(summary(rt))
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "cabecera PDF")
		})
	}
}

func TestExport_ResumenVacio(t *testing.T) {
	b, err := pdf.NewReportGenerator("").Export(metrics.Summary{ReportType: metrics.ReportGeneral, Title: "Reporte general"})
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
