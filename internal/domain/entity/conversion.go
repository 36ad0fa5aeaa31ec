package entity

import "github.com/shopspring/decimal"

// ConversionEdge representa un factor de conversión dirigido entre dos unidades.
// CantidadDestino = CantidadOrigen * Factor. El conjunto de aristas no es simétrico:
// la inversa puede existir o no.
type ConversionEdge struct {
	UnitFrom   string
	SymbolFrom string
	UnitTo     string
	SymbolTo   string
	Factor     decimal.Decimal
}

// Valid indica si la arista puede usarse: ambos símbolos presentes y factor > 0.
func (e ConversionEdge) Valid() bool {
	return e.SymbolFrom != "" && e.SymbolTo != "" && e.Factor.GreaterThan(decimal.Zero)
}
