package units

import "github.com/shopspring/decimal"

// Family familia física de una unidad.
type Family string

const (
	FamilyMass   Family = "masa"
	FamilyVolume Family = "volumen"
	FamilyCount  Family = "conteo"
)

// Range intervalo cerrado [Min, Max]; si Unbounded, [Min, ∞).
type Range struct {
	Min       decimal.Decimal
	Max       decimal.Decimal
	Unbounded bool
}

// Contains indica si v cae dentro del intervalo (extremos incluidos).
func (r Range) Contains(v decimal.Decimal) bool {
	if v.LessThan(r.Min) {
		return false
	}
	return r.Unbounded || v.LessThanOrEqual(r.Max)
}

// Rule heurística de legibilidad para una unidad: en qué rango conviene convertir
// y a qué unidades, en orden de preferencia.
type Rule struct {
	Family              Family
	Range               Range
	Targets             []string
	OnlyWhenOverPrecise bool
}

func closed(min, max string) Range {
	return Range{Min: decimal.RequireFromString(min), Max: decimal.RequireFromString(max)}
}

func atLeast(min string) Range {
	return Range{Min: decimal.RequireFromString(min), Unbounded: true}
}

// rules por símbolo de unidad. Agregar una unidad nueva es agregar una entrada.
var rules = map[string]Rule{
	// masa
	"kg": {Family: FamilyMass, Range: closed("0", "0.5"), Targets: []string{"g"}, OnlyWhenOverPrecise: true},
	"g":  {Family: FamilyMass, Range: atLeast("1500"), Targets: []string{"kg"}},
	"mg": {Family: FamilyMass, Range: atLeast("1500"), Targets: []string{"g"}},
	"t":  {Family: FamilyMass, Range: closed("0", "0.5"), Targets: []string{"kg"}},
	// volumen
	"L":   {Family: FamilyVolume, Range: closed("0", "0.5"), Targets: []string{"ml"}, OnlyWhenOverPrecise: true},
	"ml":  {Family: FamilyVolume, Range: atLeast("1500"), Targets: []string{"L"}},
	"gal": {Family: FamilyVolume, Range: closed("0", "0.5"), Targets: []string{"L"}},
	"m³":  {Family: FamilyVolume, Range: closed("0", "0.5"), Targets: []string{"L"}},
	// conteo: unidades y docenas
	"ud":  {Family: FamilyCount, Range: atLeast("24"), Targets: []string{"doc"}},
	"doc": {Family: FamilyCount, Range: closed("0", "0.5"), Targets: []string{"ud"}},
}

// RuleFor devuelve la regla de un símbolo, si existe.
func RuleFor(symbol string) (Rule, bool) {
	r, ok := rules[symbol]
	if !ok {
		return Rule{}, false
	}
	r.Targets = append([]string(nil), r.Targets...)
	return r, true
}

// Rules devuelve una copia de la tabla completa.
func Rules() map[string]Rule {
	out := make(map[string]Rule, len(rules))
	for sym := range rules {
		out[sym], _ = RuleFor(sym)
	}
	return out
}
