package entity

import "github.com/shopspring/decimal"

// RawQuantity es una cantidad tal como se almacena (fila de inventario). Nunca negativa.
type RawQuantity struct {
	Value    decimal.Decimal
	Symbol   string
	UnitName string
}

// DisplayQuantity es la cantidad elegida para mostrar, posiblemente en otra unidad.
// Si WasConverted es false, Value == OriginalValue y Symbol == OriginalSymbol.
type DisplayQuantity struct {
	Value          decimal.Decimal
	Symbol         string
	UnitName       string
	OriginalValue  decimal.Decimal
	OriginalSymbol string
	WasConverted   bool
}
