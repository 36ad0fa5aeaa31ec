package units

import (
	"github.com/shopspring/decimal"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
)

var (
	readableMin       = decimal.NewFromInt(1)
	readableMax       = decimal.NewFromInt(100000)
	overPreciseLimit  = decimal.NewFromInt(10)
	overPreciseDigits = 2
)

// Choice unidad elegida por BestUnit: la arista usada y el valor convertido sin redondear.
type Choice struct {
	Edge  entity.ConversionEdge
	Value decimal.Decimal
}

// BestUnit decide si otra unidad muestra value de forma más legible que symbol.
// Devuelve false si no hay regla para symbol, si value está fuera de su rango o si
// ninguna unidad preferida deja el valor en [1, 100000).
func BestUnit(value decimal.Decimal, symbol string, g *Graph) (Choice, bool) {
	rule, ok := rules[symbol]
	if !ok || !shouldConvert(value, rule) {
		return Choice{}, false
	}
	for _, target := range rule.Targets {
		edge, ok := g.Edge(symbol, target)
		if !ok {
			continue
		}
		converted := value.Mul(edge.Factor)
		if readable(converted) {
			return Choice{Edge: edge, Value: converted}, true
		}
	}
	return Choice{}, false
}

func shouldConvert(value decimal.Decimal, rule Rule) bool {
	if !rule.Range.Contains(value) {
		return false
	}
	if rule.OnlyWhenOverPrecise {
		return overPrecise(value)
	}
	return true
}

// overPrecise: más de 2 decimales y menor que 10 (ej. 0.11379).
func overPrecise(v decimal.Decimal) bool {
	return decimalPlaces(v) > overPreciseDigits && v.LessThan(overPreciseLimit)
}

func readable(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(readableMin) && v.LessThan(readableMax)
}
