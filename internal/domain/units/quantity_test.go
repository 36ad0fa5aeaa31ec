package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
)

func TestConvertQuantity_KgSobrePrecisoAGramos(t *testing.T) {
	raw := entity.RawQuantity{Value: dec("0.11379"), Symbol: "kg", UnitName: "Kilogramo"}
	got := units.ConvertQuantity(raw, standardGraph())

	assert.True(t, got.WasConverted)
	assertDec(t, "113.79", got.Value)
	assert.Equal(t, "g", got.Symbol)
	assert.Equal(t, "Gramo", got.UnitName)
	assertDec(t, "0.11379", got.OriginalValue)
	assert.Equal(t, "kg", got.OriginalSymbol)
}

func TestConvertQuantity_LitrosFueraDeRango(t *testing.T) {
	raw := entity.RawQuantity{Value: dec("24"), Symbol: "L", UnitName: "Litro"}
	got := units.ConvertQuantity(raw, standardGraph())

	assert.False(t, got.WasConverted)
	assertDec(t, "24", got.Value)
	assert.Equal(t, "L", got.Symbol)
	assert.True(t, got.Value.Equal(got.OriginalValue))
	assert.Equal(t, got.Symbol, got.OriginalSymbol)
}

func TestConvertQuantity_CeroYGrafoVacio(t *testing.T) {
	zero := units.ConvertQuantity(entity.RawQuantity{Value: dec("0"), Symbol: "kg"}, standardGraph())
	assert.False(t, zero.WasConverted)
	assertDec(t, "0", zero.Value)

	noEdges := units.ConvertQuantity(entity.RawQuantity{Value: dec("0.11379"), Symbol: "kg"}, units.NewGraph(nil))
	assert.False(t, noEdges.WasConverted)
	assertDec(t, "0.11", noEdges.Value, "sin conversión el valor igual se redondea")
	assertDec(t, "0.11", noEdges.OriginalValue)

	nilGraph := units.ConvertQuantity(entity.RawQuantity{Value: dec("1500"), Symbol: "g"}, nil)
	assert.False(t, nilGraph.WasConverted)
}

func TestConvertQuantity_SinSimboloNoConvierte(t *testing.T) {
	got := units.ConvertQuantity(entity.RawQuantity{Value: dec("3.14159")}, standardGraph())
	assert.False(t, got.WasConverted)
	assertDec(t, "3.14", got.Value)
	assert.Equal(t, "", got.Symbol)
}

func TestPrimaryTexts(t *testing.T) {
	converted := units.ConvertQuantity(entity.RawQuantity{Value: dec("0.11379"), Symbol: "kg"}, standardGraph())
	assert.Equal(t, "113.79 g", units.Primary(converted))
	assert.Equal(t, "113.79 g (0.11 kg)", units.PrimaryWithOriginal(converted))

	plain := units.ConvertQuantity(entity.RawQuantity{Value: dec("4.5"), Symbol: "kg"}, standardGraph())
	assert.Equal(t, "4.5 kg", units.Primary(plain))
	assert.Equal(t, "4.5 kg", units.PrimaryWithOriginal(plain), "sin conversión no se muestra el original")
}
