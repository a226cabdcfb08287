package reports

import (
	"fmt"
	"time"
	_ "time/tzdata" // zonas IANA disponibles aun en imágenes sin /usr/share/zoneinfo

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/pkg/config"
)

// EngineConfig construye la tabla del motor a partir de la configuración de la app.
func EngineConfig(rc config.ReportConfig) (metrics.Config, error) {
	cfg := metrics.DefaultConfig()

	if rc.Timezone != "" {
		loc, err := time.LoadLocation(rc.Timezone)
		if err != nil {
			return metrics.Config{}, fmt.Errorf("%w: zona horaria %q: %v", domain.ErrInvalidInput, rc.Timezone, err)
		}
		cfg.Location = loc
	}
	if rc.DefaultPeriod != "" {
		cfg.DefaultPeriod = metrics.PeriodName(rc.DefaultPeriod)
	}
	if rc.LowOccupancyPct.IsPositive() {
		cfg.Thresholds.LowOccupancyPct = rc.LowOccupancyPct
	}
	if rc.HighOccupancyPct.IsPositive() {
		cfg.Thresholds.HighOccupancyPct = rc.HighOccupancyPct
	}
	if rc.CriticalStockRatio.IsPositive() {
		cfg.Thresholds.CriticalStockRatio = rc.CriticalStockRatio
	}
	if cfg.Thresholds.LowOccupancyPct.GreaterThan(cfg.Thresholds.HighOccupancyPct) {
		return metrics.Config{}, fmt.Errorf("%w: el umbral de ocupación baja supera al alto", domain.ErrInvalidInput)
	}
	return cfg, nil
}
