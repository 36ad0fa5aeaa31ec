package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRow es una fila cruda del inventario: un producto en un depósito,
// con la unidad heredada del producto.
type InventoryRow struct {
	LocationID   string
	LocationName string
	ProductName  string
	Quantity     decimal.Decimal
	UnitName     string
	UnitSymbol   string
	LastUpdated  *time.Time
}

// LocationStock stock agregado de un producto en un depósito.
// Display se recalcula desde Quantity cada vez que cambia la suma.
type LocationStock struct {
	LocationID   string
	LocationName string
	Quantity     decimal.Decimal
	LastUpdated  *time.Time
	UnitName     string
	UnitSymbol   string
	Display      DisplayQuantity
}

// StockSummary total de un producto en todos los depósitos más el desglose por depósito.
// TotalQuantity == suma de Locations[].Quantity; ProductFound es false si no hubo filas.
type StockSummary struct {
	TotalQuantity decimal.Decimal
	Locations     []LocationStock
	ProductFound  bool
	UnitName      string
	UnitSymbol    string
	TotalDisplay  *DisplayQuantity
}

// EmptyStockSummary resumen sin filas (producto no encontrado o sin stock).
func EmptyStockSummary() StockSummary {
	return StockSummary{
		TotalQuantity: decimal.Zero,
		Locations:     []LocationStock{},
	}
}
