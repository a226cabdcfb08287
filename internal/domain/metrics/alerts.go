package metrics

import (
	"fmt"
	"sort"
)

// AlertType severidad de una alerta.
type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
	AlertSuccess AlertType = "success"
)

// Categorías de alerta.
const (
	AlertCategoryInventory   = "inventario"
	AlertCategoryMaintenance = "mantenimiento"
	AlertCategoryOccupancy   = "ocupacion"
	AlertCategoryRevenue     = "ingresos"
	AlertCategoryData        = "datos"
)

// Alert hallazgo mostrado junto al reporte.
type Alert struct {
	Type     AlertType `json:"type"`
	Category string    `json:"category"`
	Message  string    `json:"message"`
}

func (t AlertType) rank() int {
	switch t {
	case AlertWarning:
		return 0
	case AlertInfo:
		return 1
	default:
		return 2
	}
}

// AlertContext resumen ya compuesto sobre el que se evalúan los umbrales.
type AlertContext struct {
	Occupancy         OccupancySummary
	Revenue           RevenueSummary
	Inventory         InventorySummary
	FailedCollections []string // nombres legibles de las colecciones que no se pudieron cargar
}

// GenerateAlerts evalúa los umbrales fijos sobre el resumen. El resultado se ordena por
// severidad (warning > info > success) y, dentro de cada una, por orden de inserción.
// Sin habitaciones no se emiten alertas de ocupación.
func GenerateAlerts(ctx AlertContext, th Thresholds) []Alert {
	alerts := make([]Alert, 0, 8)
	add := func(t AlertType, category, msg string) {
		alerts = append(alerts, Alert{Type: t, Category: category, Message: msg})
	}

	for _, name := range ctx.FailedCollections {
		add(AlertWarning, AlertCategoryData,
			fmt.Sprintf("No se pudieron cargar %s; las métricas que dependen de ellos se muestran en cero", name))
	}

	if n := ctx.Inventory.LowStockCount; n > 0 {
		add(AlertWarning, AlertCategoryInventory,
			fmt.Sprintf("%d insumo(s) con stock bajo (%d crítico(s))", n, ctx.Inventory.CriticalCount))
	}
	if n := ctx.Occupancy.Maintenance; n > 0 {
		add(AlertWarning, AlertCategoryMaintenance,
			fmt.Sprintf("%d habitación(es) en mantenimiento o fuera de servicio", n))
	}
	if g := ctx.Revenue.GrowthPercent; g.IsNegative() {
		add(AlertWarning, AlertCategoryRevenue,
			fmt.Sprintf("Los ingresos cayeron %s%% respecto al período anterior", g.Abs().StringFixed(1)))
	}

	if ctx.Occupancy.Total > 0 {
		rate := ctx.Occupancy.Rate
		switch {
		case rate.LessThan(th.LowOccupancyPct):
			add(AlertInfo, AlertCategoryOccupancy,
				fmt.Sprintf("Ocupación de %s%% por debajo del objetivo (%s%%)", rate.StringFixed(1), th.LowOccupancyPct.String()))
		case th.HighOccupancyPct.IsPositive() && rate.GreaterThanOrEqual(th.HighOccupancyPct):
			add(AlertSuccess, AlertCategoryOccupancy,
				fmt.Sprintf("Ocupación de %s%%, sobre la meta de %s%%", rate.StringFixed(1), th.HighOccupancyPct.String()))
		}
	}

	if g := ctx.Revenue.GrowthPercent; g.IsPositive() {
		add(AlertSuccess, AlertCategoryRevenue,
			fmt.Sprintf("Los ingresos crecieron %s%% respecto al período anterior", g.StringFixed(1)))
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Type.rank() < alerts[j].Type.rank()
	})
	return alerts
}
