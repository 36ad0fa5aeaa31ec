package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de reglas
// ──────────────────────────────────────────────────────────────────────────────

func TestRules_TablaCompleta(t *testing.T) {
	want := map[string]struct {
		family  units.Family
		target  string
		precise bool
	}{
		"kg":  {units.FamilyMass, "g", true},
		"g":   {units.FamilyMass, "kg", false},
		"mg":  {units.FamilyMass, "g", false},
		"t":   {units.FamilyMass, "kg", false},
		"L":   {units.FamilyVolume, "ml", true},
		"ml":  {units.FamilyVolume, "L", false},
		"gal": {units.FamilyVolume, "L", false},
		"m³":  {units.FamilyVolume, "L", false},
		"ud":  {units.FamilyCount, "doc", false},
		"doc": {units.FamilyCount, "ud", false},
	}
	rules := units.Rules()
	require.Len(t, rules, len(want))
	for sym, w := range want {
		r, ok := rules[sym]
		require.True(t, ok, "falta regla para %s", sym)
		assert.Equal(t, w.family, r.Family, sym)
		assert.Equal(t, []string{w.target}, r.Targets, sym)
		assert.Equal(t, w.precise, r.OnlyWhenOverPrecise, sym)
	}
}

func TestRuleFor_CopiaNoAlteraTabla(t *testing.T) {
	r, ok := units.RuleFor("kg")
	require.True(t, ok)
	r.Targets[0] = "lb"

	again, _ := units.RuleFor("kg")
	assert.Equal(t, []string{"g"}, again.Targets)
}

// ──────────────────────────────────────────────────────────────────────────────
// BestUnit
// ──────────────────────────────────────────────────────────────────────────────

func TestBestUnit_Limites(t *testing.T) {
	g := standardGraph()
	cases := []struct {
		name    string
		value   string
		symbol  string
		convert bool
		target  string
		want    string
	}{
		{"kg sobre-preciso", "0.11379", "kg", true, "g", "113.79"},
		{"kg 0.49 solo dos decimales", "0.49", "kg", false, "", ""},
		{"kg 0.499 sobre-preciso", "0.499", "kg", true, "g", "499"},
		{"kg 0.5 exacto no es sobre-preciso", "0.5", "kg", false, "", ""},
		{"kg 0.501 fuera de rango", "0.501", "kg", false, "", ""},
		{"g 1499 bajo umbral", "1499", "g", false, "", ""},
		{"g 1500 en umbral", "1500", "g", true, "kg", "1.5"},
		{"g demasiado grande para kg legible", "200000000", "g", false, "", ""},
		{"mg 1500", "1500", "mg", true, "g", "1.5"},
		{"t 0.5 incluido", "0.5", "t", true, "kg", "500"},
		{"t 0.51 fuera", "0.51", "t", false, "", ""},
		{"L 0.125", "0.125", "L", true, "ml", "125"},
		{"L 24 fuera de rango", "24", "L", false, "", ""},
		{"ml 1500", "1500", "ml", true, "L", "1.5"},
		{"gal 0.5", "0.5", "gal", true, "L", "1.892705"},
		{"m³ 0.5", "0.5", "m³", true, "L", "500"},
		{"ud 23 bajo umbral", "23", "ud", false, "", ""},
		{"ud 24", "24", "ud", true, "doc", "1.9999999992"},
		{"doc 0.5", "0.5", "doc", true, "ud", "6"},
		{"doc 0 no legible", "0", "doc", false, "", ""},
		{"unidad desconocida", "3", "bolsas", false, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			choice, ok := units.BestUnit(dec(tc.value), tc.symbol, g)
			require.Equal(t, tc.convert, ok)
			if !tc.convert {
				return
			}
			assert.Equal(t, tc.target, choice.Edge.SymbolTo)
			assertDec(t, tc.want, choice.Value)
		})
	}
}

func TestBestUnit_SinAristaNoConvierte(t *testing.T) {
	g := units.NewGraph([]entity.ConversionEdge{edge("L", "ml", "1000")})
	_, ok := units.BestUnit(dec("0.11379"), "kg", g)
	assert.False(t, ok, "sin arista kg->g no debe ofrecer conversión")
}

func TestBestUnit_SoloAristaDirecta(t *testing.T) {
	// Solo existe g->kg; kg->g no se deduce de la inversa.
	g := units.NewGraph([]entity.ConversionEdge{edge("g", "kg", "0.001")})
	_, ok := units.BestUnit(dec("0.11379"), "kg", g)
	assert.False(t, ok)
}

func TestBestUnit_ResultadoSiempreLegible(t *testing.T) {
	g := standardGraph()
	for sym, rule := range units.Rules() {
		for _, v := range []string{rule.Range.Min.String(), "0.123", "0.5", "1500", "24", "99999999"} {
			choice, ok := units.BestUnit(dec(v), sym, g)
			if !ok {
				continue
			}
			assert.True(t, choice.Value.GreaterThanOrEqual(dec("1")) && choice.Value.LessThan(dec("100000")),
				"%s %s convertido a %s fuera de [1, 100000)", v, sym, choice.Value)
		}
	}
}
