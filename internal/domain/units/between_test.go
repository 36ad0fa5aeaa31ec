package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
)

func TestConvertBetween_Identidad(t *testing.T) {
	for _, g := range []*units.Graph{nil, units.NewGraph(nil), standardGraph()} {
		got, ok := units.ConvertBetween(dec("7.123"), "bolsas", "bolsas", g)
		require.True(t, ok)
		assertDec(t, "7.123", got)
	}
}

func TestConvertBetween_Directa(t *testing.T) {
	got, ok := units.ConvertBetween(dec("1"), "kg", "g", standardGraph())
	require.True(t, ok)
	assertDec(t, "1000", got)
}

func TestConvertBetween_Inversa(t *testing.T) {
	// Solo existe kg->g: g->kg se resuelve dividiendo por el factor.
	g := units.NewGraph([]entity.ConversionEdge{edge("kg", "g", "1000")})
	got, ok := units.ConvertBetween(dec("500"), "g", "kg", g)
	require.True(t, ok)
	assertDec(t, "0.5", got)

	for _, v := range []string{"1", "3", "0.25", "12345.6789"} {
		got, ok := units.ConvertBetween(dec(v), "g", "kg", g)
		require.True(t, ok)
		assert.True(t, dec(v).Div(dec("1000")).Equal(got), "inversa de %s", v)
	}
}

func TestConvertBetween_DirectaTienePrioridad(t *testing.T) {
	g := units.NewGraph([]entity.ConversionEdge{
		edge("kg", "g", "1000"),
		edge("g", "kg", "0.002"), // factor deliberadamente distinto
	})
	got, ok := units.ConvertBetween(dec("500"), "g", "kg", g)
	require.True(t, ok)
	assertDec(t, "1", got)
}

func TestConvertBetween_SinRuta(t *testing.T) {
	got, ok := units.ConvertBetween(dec("3"), "bolsas", "kg", standardGraph())
	assert.False(t, ok)
	assert.True(t, got.IsZero())
}

func TestConvertBetween_UnSoloSalto(t *testing.T) {
	g := units.NewGraph([]entity.ConversionEdge{
		edge("mg", "g", "0.001"),
		edge("g", "kg", "0.001"),
	})
	_, ok := units.ConvertBetween(dec("1500"), "mg", "kg", g)
	assert.False(t, ok, "no se encadenan aristas mg->g->kg")
}

func TestNewGraph_DescartaAristasInvalidas(t *testing.T) {
	g := units.NewGraph([]entity.ConversionEdge{
		edge("kg", "g", "0"),
		edge("kg", "g", "-5"),
		{SymbolFrom: "", SymbolTo: "g", Factor: dec("1")},
		edge("kg", "g", "1000"),
		edge("kg", "g", "999"),
	})
	assert.Equal(t, 1, g.Len())
	e, ok := g.Edge("kg", "g")
	require.True(t, ok)
	assertDec(t, "1000", e.Factor, "gana la primera arista válida")
}
