package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"
)

// StockSeverity gravedad de un artículo con stock bajo.
type StockSeverity string

const (
	SeverityCritical StockSeverity = "critical"
	SeverityLow      StockSeverity = "low"
)

// LowStockItem artículo en o por debajo de su stock mínimo.
type LowStockItem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	CurrentStock int           `json:"current_stock"`
	MinStock     int           `json:"min_stock"`
	Severity     StockSeverity `json:"severity"`
}

// SnackSummary productos de tienda, reportados aparte de los insumos.
type SnackSummary struct {
	TotalItems    int             `json:"total_items"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockCount int             `json:"low_stock_count"`
}

// InventorySummary resultado del Inventory Aggregator (solo insumos).
type InventorySummary struct {
	TotalItems      int             `json:"total_items"`
	TotalValue      decimal.Decimal `json:"total_value"`
	HealthyCount    int             `json:"healthy_count"`
	LowStockCount   int             `json:"low_stock_count"`
	CriticalCount   int             `json:"critical_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	LowStock        []LowStockItem  `json:"low_stock"`
	ByCategory      []CategoryShare `json:"by_category"`
	Snacks          SnackSummary    `json:"snacks"`
	Degraded        bool            `json:"degraded"`
}

// AggregateInventory agrupa los insumos por categoría y marca los de stock bajo.
// Un artículo está bajo si CurrentStock <= MinStock; es crítico si además no hay stock o
// CurrentStock <= MinStock × criticalRatio. La lista LowStock pone primero los críticos.
func AggregateInventory(items []entity.InventoryItem, criticalRatio decimal.Decimal) InventorySummary {
	s := InventorySummary{
		TotalValue: decimal.Zero,
		LowStock:   []LowStockItem{},
		Snacks:     SnackSummary{TotalValue: decimal.Zero},
	}
	categories := newGroupedTotals()

	for _, it := range items {
		if it.IsSnack() {
			s.Snacks.TotalItems++
			s.Snacks.TotalValue = s.Snacks.TotalValue.Add(it.StockValue())
			if it.CurrentStock <= it.MinStock {
				s.Snacks.LowStockCount++
			}
			continue
		}

		s.TotalItems++
		s.TotalValue = s.TotalValue.Add(it.StockValue())
		categories.add(it.Category, it.StockValue())
		if it.CurrentStock == 0 {
			s.OutOfStockCount++
		}
		if it.CurrentStock > it.MinStock {
			s.HealthyCount++
			continue
		}
		sev := stockSeverity(it, criticalRatio)
		if sev == SeverityCritical {
			s.CriticalCount++
		}
		s.LowStock = append(s.LowStock, LowStockItem{
			ID:           it.ID,
			Name:         it.Name,
			Category:     it.Category,
			CurrentStock: it.CurrentStock,
			MinStock:     it.MinStock,
			Severity:     sev,
		})
	}

	sort.SliceStable(s.LowStock, func(i, j int) bool {
		return s.LowStock[i].Severity == SeverityCritical && s.LowStock[j].Severity != SeverityCritical
	})
	s.LowStockCount = len(s.LowStock)
	s.TotalValue = s.TotalValue.Round(2)
	s.Snacks.TotalValue = s.Snacks.TotalValue.Round(2)
	s.ByCategory = categories.shares()
	return s
}

func stockSeverity(it entity.InventoryItem, criticalRatio decimal.Decimal) StockSeverity {
	current := decimal.NewFromInt(int64(it.CurrentStock))
	threshold := decimal.NewFromInt(int64(it.MinStock)).Mul(criticalRatio)
	if it.CurrentStock == 0 || current.LessThanOrEqual(threshold) {
		return SeverityCritical
	}
	return SeverityLow
}
