package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
)

func item(id, category string, current, min int, price string, kind entity.ItemType) entity.InventoryItem {
	return entity.InventoryItem{
		ID:           id,
		Name:         "Artículo " + id,
		Category:     category,
		CurrentStock: current,
		MinStock:     min,
		UnitPrice:    dec(price),
		ItemType:     kind,
	}
}

func TestAggregateInventory_StockCritico(t *testing.T) {
	s := metrics.AggregateInventory([]entity.InventoryItem{
		item("1", "Limpieza", 2, 10, "5", entity.ItemSupply),
	}, dec("0.5"))

	if assert.Len(t, s.LowStock, 1) {
		assert.Equal(t, metrics.SeverityCritical, s.LowStock[0].Severity)
	}
	assert.Equal(t, 1, s.CriticalCount)
	assertDec(t, "10", s.TotalValue)
}

func TestAggregateInventory_SeveridadesYOrden(t *testing.T) {
	items := []entity.InventoryItem{
		item("bajo", "Limpieza", 8, 10, "1", entity.ItemSupply),
		item("sano", "Amenities", 50, 10, "2", entity.ItemSupply),
		item("agotado", "Amenities", 0, 4, "3", entity.ItemSupply),
		item("limite", "Lencería", 10, 10, "10", entity.ItemSupply),
		item("snack", "Bebidas", 1, 10, "4", entity.ItemSnack),
	}

	s := metrics.AggregateInventory(items, dec("0.5"))

	assert.Equal(t, 4, s.TotalItems, "los snacks no cuentan como insumos")
	assert.Equal(t, 1, s.HealthyCount)
	assert.Equal(t, 3, s.LowStockCount)
	assert.Equal(t, 1, s.CriticalCount)
	assert.Equal(t, 1, s.OutOfStockCount)
	assertDec(t, "208", s.TotalValue)

	if assert.Len(t, s.LowStock, 3) {
		assert.Equal(t, "agotado", s.LowStock[0].ID)
		assert.Equal(t, metrics.SeverityCritical, s.LowStock[0].Severity)
		assert.Equal(t, "bajo", s.LowStock[1].ID)
		assert.Equal(t, "limite", s.LowStock[2].ID)
		assert.Equal(t, metrics.SeverityLow, s.LowStock[2].Severity)
	}

	assert.Equal(t, 1, s.Snacks.TotalItems)
	assert.Equal(t, 1, s.Snacks.LowStockCount)
	assertDec(t, "4", s.Snacks.TotalValue)

	pct := 0
	for _, c := range s.ByCategory {
		pct += c.Percentage
	}
	assert.Equal(t, 100, pct)
	if assert.Len(t, s.ByCategory, 3) {
		assert.Equal(t, "Amenities", s.ByCategory[0].Name)
		assert.Equal(t, 2, s.ByCategory[0].Count)
	}
}

func TestAggregateInventory_SinArticulos(t *testing.T) {
	s := metrics.AggregateInventory(nil, dec("0.5"))

	assert.Zero(t, s.TotalItems)
	assert.True(t, s.TotalValue.IsZero())
	assert.NotNil(t, s.LowStock)
	assert.NotNil(t, s.ByCategory)
}
