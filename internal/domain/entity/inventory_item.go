package entity

import "github.com/shopspring/decimal"

// ItemType distingue insumos operativos de productos de tienda.
type ItemType string

const (
	ItemSupply ItemType = "supply"
	ItemSnack  ItemType = "snack"
)

// InventoryItem artículo de inventario de una sucursal.
type InventoryItem struct {
	ID           string
	Name         string
	Category     string // "Sin categoría" si viene vacío
	CurrentStock int    // >= 0
	MinStock     int    // >= 0
	UnitPrice    decimal.Decimal
	ItemType     ItemType
	BranchID     string
}

// IsSnack indica si el artículo pertenece a la tienda (excluido de los agregados de insumos).
func (i InventoryItem) IsSnack() bool {
	return i.ItemType == ItemSnack
}

// StockValue valor del stock actual (CurrentStock × UnitPrice).
func (i InventoryItem) StockValue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.CurrentStock)))
}
