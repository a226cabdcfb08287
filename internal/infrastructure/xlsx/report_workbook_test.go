package xlsx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/infrastructure/xlsx"
)

func summary(rt metrics.ReportType) metrics.Summary {
	cfg := metrics.DefaultConfig()
	now := time.Date(2025, time.June, 20, 9, 0, 0, 0, time.UTC)
	snap := metrics.Snapshot{
		Rooms: []entity.Room{
			{ID: "101", RoomType: "Doble", Status: entity.RoomOccupied},
			{ID: "102", RoomType: "Suite", Status: entity.RoomAvailable},
		},
		Reservations: []entity.Reservation{{
			ID: "r1", GuestID: "g1", RoomID: "101",
			CheckIn:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC),
			Status:   entity.ReservationCheckedOut, TotalAmount: decimal.NewFromInt(300), Rate: decimal.NewFromInt(100), Nights: 3,
		}},
		Items: []entity.InventoryItem{{ID: "i1", Name: "Toallas", Category: "Lencería", CurrentStock: 1, MinStock: 10}},
	}
	return cfg.Assemble(rt, cfg.Resolve(metrics.PeriodRequest{Name: "this_month"}, now), snap, now)
}

func open(t *testing.T, b []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestExport_ReporteGeneralTieneTodasLasHojas(t *testing.T) {
	b, err := xlsx.NewWorkbookExporter().Export(summary(metrics.ReportGeneral))
	require.NoError(t, err)

	f := open(t, b)
	assert.Equal(t, []string{
		xlsx.SheetSummary, xlsx.SheetOccupancy, xlsx.SheetRevenue, xlsx.SheetGuests, xlsx.SheetInventory, xlsx.SheetAlerts,
	}, f.GetSheetList())

	title, err := f.GetCellValue(xlsx.SheetSummary, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Reporte general", title)

	total, err := f.GetCellValue(xlsx.SheetRevenue, "B4")
	require.NoError(t, err)
	assert.Equal(t, "300", total, "fila Total tras las dos categorías")

	item, err := f.GetCellValue(xlsx.SheetInventory, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Toallas", item)
}

func TestExport_ReporteEnfocadoSoloSuHoja(t *testing.T) {
	b, err := xlsx.NewWorkbookExporter().Export(summary(metrics.ReportInventory))
	require.NoError(t, err)

	f := open(t, b)
	assert.Equal(t, []string{xlsx.SheetSummary, xlsx.SheetInventory, xlsx.SheetAlerts}, f.GetSheetList())

	rows, err := f.GetRows(xlsx.SheetAlerts)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "warning", rows[1][0])
}
