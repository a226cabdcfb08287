package metrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"
)

// ReportType tipo de reporte solicitado.
type ReportType string

const (
	ReportGeneral   ReportType = "general"
	ReportOccupancy ReportType = "occupancy"
	ReportRevenue   ReportType = "revenue"
	ReportGuests    ReportType = "guests"
	ReportInventory ReportType = "inventory"
)

var reportTitles = map[ReportType]string{
	ReportGeneral:   "Reporte general",
	ReportOccupancy: "Reporte de ocupación",
	ReportRevenue:   "Reporte de ingresos",
	ReportGuests:    "Reporte de huéspedes",
	ReportInventory: "Reporte de inventario",
}

// ParseReportType acepta el nombre canónico o su alias en español.
func ParseReportType(s string) (ReportType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "general", "dashboard":
		return ReportGeneral, true
	case "occupancy", "ocupacion", "ocupación":
		return ReportOccupancy, true
	case "revenue", "ingresos":
		return ReportRevenue, true
	case "guests", "huespedes", "huéspedes":
		return ReportGuests, true
	case "inventory", "inventario", "supplies", "insumos":
		return ReportInventory, true
	}
	return "", false
}

// Title título legible del reporte.
func (t ReportType) Title() string {
	if s, ok := reportTitles[t]; ok {
		return s
	}
	return reportTitles[ReportGeneral]
}

// Summary resumen de métricas de una ventana (MetricsSummary). Se construye en cada
// cálculo y nunca contiene campos nulos, NaN ni infinitos.
type Summary struct {
	ReportType  ReportType       `json:"report_type"`
	Title       string           `json:"title"`
	Period      Resolution       `json:"period"`
	Occupancy   OccupancySummary `json:"occupancy"`
	Revenue     RevenueSummary   `json:"revenue"`
	Guests      GuestSummary     `json:"guests"`
	Inventory   InventorySummary `json:"inventory"`
	Alerts      []Alert          `json:"alerts"`
	Warnings    []string         `json:"warnings"`
	Degraded    bool             `json:"degraded"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// Snapshot colecciones ya normalizadas. Los flags Failed indican que la colección no se
// pudo obtener y se trata como vacía. Los flags Truncated indican que la lectura llegó al
// límite de registros y la colección puede estar incompleta.
type Snapshot struct {
	Rooms                 []entity.Room
	Reservations          []entity.Reservation
	Guests                []entity.Guest
	Items                 []entity.InventoryItem
	RoomsFailed           bool
	ReservationsFailed    bool
	GuestsFailed          bool
	ItemsFailed           bool
	RoomsTruncated        bool
	ReservationsTruncated bool
	GuestsTruncated       bool
	ItemsTruncated        bool
}

// Assemble compone el resumen completo de un reporte: filtra por ventana, ejecuta los
// calculadores y genera las alertas. Si un calculador falla (panic) su sección queda con
// los valores en cero, marcada como degradada, y se agrega una advertencia; el resto del
// resumen se calcula igual.
func (c Config) Assemble(rt ReportType, period Resolution, snap Snapshot, now time.Time) Summary {
	sum := Summary{
		ReportType:  rt,
		Title:       rt.Title(),
		Period:      period,
		Warnings:    []string{},
		GeneratedAt: now,
	}
	if period.Warning != "" {
		sum.Warnings = append(sum.Warnings, period.Warning)
	}
	for _, name := range snap.truncated() {
		sum.Warnings = append(sum.Warnings,
			fmt.Sprintf("la lectura de %s alcanzó el límite de registros; los resultados pueden estar incompletos", name))
	}

	current := FilterByWindow(snap.Reservations, period.Current)
	prior := FilterByWindow(snap.Reservations, period.Prior)
	window := period.Current

	sum.Occupancy = guard(&sum, "ocupación", emptyOccupancy(), func() OccupancySummary {
		return ComputeOccupancy(snap.Rooms, current.Overlapping, &window)
	})
	sum.Occupancy.Degraded = sum.Occupancy.Degraded || snap.RoomsFailed || snap.ReservationsFailed ||
		snap.RoomsTruncated || snap.ReservationsTruncated

	// RevPAR usa la tasa de ocupación actual (estado de las habitaciones al generar el
	// reporte), no el promedio de la tendencia de la ventana; para ventanas pasadas es una
	// aproximación.
	sum.Revenue = guard(&sum, "ingresos", emptyRevenue(c.buckets()), func() RevenueSummary {
		r := ComputeRevenue(current.Completed, prior.Completed, sum.Occupancy.Rate, c.buckets())
		r.ByRoomType = RevenueByRoomType(current.Completed, snap.Rooms, c.roomTypeDefault())
		if len(snap.Rooms) == 0 {
			// sin habitaciones no hay tarifa por habitación que promediar
			r.ADR, r.RevPAR = decimal.Zero, decimal.Zero
		}
		return r
	})
	sum.Revenue.Degraded = sum.Revenue.Degraded || snap.ReservationsFailed || snap.ReservationsTruncated

	sum.Guests = guard(&sum, "huéspedes", emptyGuests(), func() GuestSummary {
		g := ClassifyGuests(completedOnly(snap.Reservations), current.Overlapping)
		g.TotalRegistered = len(snap.Guests)
		return g
	})
	sum.Guests.Degraded = sum.Guests.Degraded || snap.ReservationsFailed || snap.GuestsFailed ||
		snap.ReservationsTruncated || snap.GuestsTruncated

	sum.Inventory = guard(&sum, "inventario", emptyInventory(), func() InventorySummary {
		return AggregateInventory(snap.Items, c.Thresholds.CriticalStockRatio)
	})
	sum.Inventory.Degraded = sum.Inventory.Degraded || snap.ItemsFailed || snap.ItemsTruncated

	sum.Alerts = guard(&sum, "alertas", []Alert{}, func() []Alert {
		return GenerateAlerts(AlertContext{
			Occupancy:         sum.Occupancy,
			Revenue:           sum.Revenue,
			Inventory:         sum.Inventory,
			FailedCollections: snap.failed(),
		}, c.Thresholds)
	})

	sum.Degraded = sum.Degraded || sum.Occupancy.Degraded || sum.Revenue.Degraded || sum.Guests.Degraded || sum.Inventory.Degraded
	return sum
}

func (s Snapshot) failed() []string {
	var out []string
	if s.RoomsFailed {
		out = append(out, "las habitaciones")
	}
	if s.ReservationsFailed {
		out = append(out, "las reservas")
	}
	if s.GuestsFailed {
		out = append(out, "los huéspedes")
	}
	if s.ItemsFailed {
		out = append(out, "los artículos de inventario")
	}
	return out
}

func (s Snapshot) truncated() []string {
	var out []string
	if s.RoomsTruncated {
		out = append(out, "habitaciones")
	}
	if s.ReservationsTruncated {
		out = append(out, "reservas")
	}
	if s.GuestsTruncated {
		out = append(out, "huéspedes")
	}
	if s.ItemsTruncated {
		out = append(out, "inventario")
	}
	return out
}

// guard ejecuta fn y, si entra en panic, devuelve fallback y registra la advertencia.
func guard[T any](sum *Summary, section string, fallback T, fn func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			sum.Warnings = append(sum.Warnings, fmt.Sprintf("no se pudo calcular la sección %s: %v", section, r))
			sum.Degraded = true
			out = markDegraded(fallback)
		}
	}()
	return fn()
}

func markDegraded[T any](v T) T {
	switch x := any(&v).(type) {
	case *OccupancySummary:
		x.Degraded = true
	case *RevenueSummary:
		x.Degraded = true
	case *GuestSummary:
		x.Degraded = true
	case *InventorySummary:
		x.Degraded = true
	}
	return v
}

func (c Config) buckets() RevenueBuckets {
	b := RevenueBuckets{Rooms: c.RoomsBucket, Store: c.StoreBucket}
	if b.Rooms == "" {
		b.Rooms = "Habitaciones"
	}
	if b.Store == "" {
		b.Store = "Tienda/Snacks"
	}
	return b
}

func (c Config) roomTypeDefault() string {
	if c.DefaultRoomType == "" {
		return "Estándar"
	}
	return c.DefaultRoomType
}

func emptyOccupancy() OccupancySummary {
	return ComputeOccupancy(nil, nil, nil)
}

func emptyRevenue(b RevenueBuckets) RevenueSummary {
	return ComputeRevenue(nil, nil, decimal.Zero, b)
}

func emptyGuests() GuestSummary {
	return ClassifyGuests(nil, nil)
}

func emptyInventory() InventorySummary {
	return AggregateInventory(nil, decimal.Zero)
}
