package units

import "github.com/shopspring/decimal"

// ConvertBetween convierte value de la unidad from a la unidad to con un solo salto:
// identidad si coinciden, arista directa (value * factor) o inversa (value / factor).
// ok == false significa que no hay ruta de conversión; el valor devuelto no debe
// usarse como cero.
func ConvertBetween(value decimal.Decimal, from, to string, g *Graph) (decimal.Decimal, bool) {
	if from == to {
		return value, true
	}
	if e, ok := g.Edge(from, to); ok {
		return value.Mul(e.Factor), true
	}
	if e, ok := g.Edge(to, from); ok {
		return value.Div(e.Factor), true
	}
	return decimal.Zero, false
}
