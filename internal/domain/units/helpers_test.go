package units_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func edge(from, to, factor string) entity.ConversionEdge {
	return entity.ConversionEdge{UnitFrom: from, SymbolFrom: from, UnitTo: to, SymbolTo: to, Factor: dec(factor)}
}

// standardGraph tabla de conversiones típica de un banco de alimentos.
func standardGraph() *units.Graph {
	return units.NewGraph([]entity.ConversionEdge{
		{UnitFrom: "Kilogramo", SymbolFrom: "kg", UnitTo: "Gramo", SymbolTo: "g", Factor: dec("1000")},
		{UnitFrom: "Gramo", SymbolFrom: "g", UnitTo: "Kilogramo", SymbolTo: "kg", Factor: dec("0.001")},
		{UnitFrom: "Miligramo", SymbolFrom: "mg", UnitTo: "Gramo", SymbolTo: "g", Factor: dec("0.001")},
		{UnitFrom: "Tonelada", SymbolFrom: "t", UnitTo: "Kilogramo", SymbolTo: "kg", Factor: dec("1000")},
		{UnitFrom: "Litro", SymbolFrom: "L", UnitTo: "Mililitro", SymbolTo: "ml", Factor: dec("1000")},
		{UnitFrom: "Mililitro", SymbolFrom: "ml", UnitTo: "Litro", SymbolTo: "L", Factor: dec("0.001")},
		{UnitFrom: "Galón", SymbolFrom: "gal", UnitTo: "Litro", SymbolTo: "L", Factor: dec("3.78541")},
		{UnitFrom: "Metro cúbico", SymbolFrom: "m³", UnitTo: "Litro", SymbolTo: "L", Factor: dec("1000")},
		{UnitFrom: "Unidad", SymbolFrom: "ud", UnitTo: "Docena", SymbolTo: "doc", Factor: dec("0.0833333333")},
		{UnitFrom: "Docena", SymbolFrom: "doc", UnitTo: "Unidad", SymbolTo: "ud", Factor: dec("12")},
	})
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]interface{}{"esperado %s, obtenido %s", want, got.String()}, msgAndArgs...)...)
}
