package units

import (
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
)

// ConvertQuantity produce la forma de presentación de una cantidad almacenada.
// Sin conversión, Value y OriginalValue son el valor redondeado. Con conversión,
// OriginalValue conserva el valor almacenado exacto.
func ConvertQuantity(raw entity.RawQuantity, g *Graph) entity.DisplayQuantity {
	rounded := Round(raw.Value, DefaultDecimals)
	unconverted := entity.DisplayQuantity{
		Value:          rounded,
		Symbol:         raw.Symbol,
		UnitName:       raw.UnitName,
		OriginalValue:  rounded,
		OriginalSymbol: raw.Symbol,
	}
	// Fila sin símbolo: no hay conversión posible, pero la cantidad sigue siendo válida.
	if raw.Value.IsZero() || g.Len() == 0 || raw.Symbol == "" {
		return unconverted
	}
	choice, ok := BestUnit(raw.Value, raw.Symbol, g)
	if !ok {
		return unconverted
	}
	return entity.DisplayQuantity{
		Value:          Round(choice.Value, DefaultDecimals),
		Symbol:         choice.Edge.SymbolTo,
		UnitName:       choice.Edge.UnitTo,
		OriginalValue:  raw.Value,
		OriginalSymbol: raw.Symbol,
		WasConverted:   true,
	}
}

// Primary texto principal: "<valor> <símbolo>".
func Primary(d entity.DisplayQuantity) string {
	return withSymbol(FormatNumber(d.Value, DefaultDecimals), d.Symbol)
}

// PrimaryWithOriginal agrega la cantidad original entre paréntesis cuando hubo conversión:
// "113.79 g (0.11 kg)". Sin conversión equivale a Primary.
func PrimaryWithOriginal(d entity.DisplayQuantity) string {
	if !d.WasConverted {
		return Primary(d)
	}
	orig := withSymbol(FormatNumber(d.OriginalValue, DefaultDecimals), d.OriginalSymbol)
	return Primary(d) + " (" + orig + ")"
}

func withSymbol(value, symbol string) string {
	if symbol == "" {
		return value
	}
	return value + " " + symbol
}
