// Package metrics es el motor de reportes del hotel: a partir de un snapshot de
// habitaciones, reservas, huéspedes e inventario y de una ventana de fechas deriva los
// KPIs (ocupación, ingresos, ADR/RevPAR, huéspedes nuevos vs recurrentes, alertas de
// stock, crecimiento respecto al período anterior).
//
// Todas las funciones son puras: no hacen I/O, no mutan sus entradas y no guardan estado,
// por lo que pueden ejecutarse en paralelo sin sincronización.
package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/record"
)

// Thresholds umbrales de las alertas.
type Thresholds struct {
	LowOccupancyPct    decimal.Decimal // ocupación por debajo → info "bajo el objetivo"
	HighOccupancyPct   decimal.Decimal // ocupación igual o superior → success
	CriticalStockRatio decimal.Decimal // stock <= mínimo × ratio → severidad crítica
}

// PeriodSpec entrada del vocabulario de períodos con nombre.
type PeriodSpec struct {
	Name    PeriodName
	Label   string
	Aliases []string
}

// Config tabla única de configuración del motor: vocabulario de períodos, umbrales de
// alertas y valores por defecto. Se inyecta; ningún reporte fija estos valores en línea.
type Config struct {
	Periods         []PeriodSpec
	DefaultPeriod   PeriodName
	Thresholds      Thresholds
	RoomsBucket     string
	StoreBucket     string
	DefaultCategory string
	DefaultRoomType string
	Location        *time.Location
}

// DefaultConfig devuelve la tabla estándar.
func DefaultConfig() Config {
	return Config{
		Periods: []PeriodSpec{
			{Name: PeriodToday, Label: "Hoy", Aliases: []string{"hoy"}},
			{Name: PeriodYesterday, Label: "Ayer", Aliases: []string{"ayer"}},
			{Name: PeriodThisWeek, Label: "Esta semana", Aliases: []string{"esta_semana", "week"}},
			{Name: PeriodLastWeek, Label: "Semana pasada", Aliases: []string{"semana_pasada"}},
			{Name: PeriodThisMonth, Label: "Este mes", Aliases: []string{"este_mes", "month"}},
			{Name: PeriodLastMonth, Label: "Mes pasado", Aliases: []string{"mes_pasado"}},
			{Name: PeriodThisQuarter, Label: "Este trimestre", Aliases: []string{"este_trimestre", "quarter"}},
			{Name: PeriodThisYear, Label: "Este año", Aliases: []string{"este_año", "este_anio", "year"}},
			{Name: PeriodCustom, Label: "Personalizado", Aliases: []string{"personalizado", "range"}},
		},
		DefaultPeriod: PeriodThisMonth,
		Thresholds: Thresholds{
			LowOccupancyPct:    decimal.NewFromInt(40),
			HighOccupancyPct:   decimal.NewFromInt(80),
			CriticalStockRatio: decimal.NewFromFloat(0.5),
		},
		RoomsBucket:     "Habitaciones",
		StoreBucket:     "Tienda/Snacks",
		DefaultCategory: record.DefaultCategory,
		DefaultRoomType: record.DefaultRoomType,
		Location:        time.UTC,
	}
}

// Normalizer construye el normalizador de registros con los valores por defecto de la tabla.
func (c Config) Normalizer() record.Normalizer {
	return record.Normalizer{
		Location:        c.location(),
		DefaultCategory: c.DefaultCategory,
		DefaultRoomType: c.DefaultRoomType,
	}
}

func (c Config) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

func (c Config) spec(name PeriodName) (PeriodSpec, bool) {
	for _, p := range c.Periods {
		if p.Name == name {
			return p, true
		}
	}
	return PeriodSpec{}, false
}
