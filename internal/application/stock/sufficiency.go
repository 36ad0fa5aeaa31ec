package stock

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
)

// Request cantidad solicitada. Symbol vacío significa "en la unidad del stock".
type Request struct {
	Product  string
	Quantity decimal.Decimal
	Symbol   string
}

// Verdict resultado de comparar el stock con una solicitud.
// Available y Shortfall se expresan en Symbol, la unidad efectivamente comparada.
type Verdict struct {
	Sufficient  bool
	Convertible bool
	Available   decimal.Decimal
	Requested   decimal.Decimal
	Shortfall   decimal.Decimal
	Symbol      string
	Message     string
}

// Evaluate compara el total del resumen con la solicitud. Si las unidades no se pueden
// convertir, el resultado es insuficiente (falla cerrado) y el mensaje lo indica.
// Sin stock el resultado también es insuficiente.
func Evaluate(summary entity.StockSummary, req Request, g *units.Graph) Verdict {
	target := req.Symbol
	if target == "" {
		target = summary.UnitSymbol
	}
	v := Verdict{
		Convertible: true,
		Available:   decimal.Zero,
		Requested:   req.Quantity,
		Shortfall:   decimal.Zero,
		Symbol:      target,
	}

	if !summary.ProductFound || !summary.TotalQuantity.IsPositive() {
		v.Shortfall = req.Quantity
		v.Message = fmt.Sprintf("No hay stock disponible para %q", req.Product)
		return v
	}

	available, shortfall, ok := compare(summary.TotalQuantity, summary.UnitSymbol, req.Quantity, target, g)
	if !ok {
		return unconvertible(v, summary, target)
	}
	if req.Quantity.IsZero() {
		v.Sufficient = true
		v.Available = available
		v.Message = "✓ Stock disponible: " + quantityText(available, target)
		return v
	}
	v.Available = available
	if shortfall.Sign() <= 0 {
		v.Sufficient = true
		v.Message = fmt.Sprintf("✓ Stock suficiente: %s disponibles", quantityText(available, target))
		return v
	}
	v.Shortfall = shortfall
	v.Message = "⚠ Stock insuficiente: faltan " + shortfallText(shortfall, target)
	return v
}

// compare devuelve el stock disponible y el faltante, ambos en la unidad solicitada.
// Si existe la arista solicitada -> stock, la comparación se hace en la unidad del
// stock multiplicando la solicitud (1 doc -> 12 ud), sin pasar por el factor de la
// arista opuesta, que puede estar truncado (0.0833333333).
func compare(total decimal.Decimal, stockSymbol string, requested decimal.Decimal, target string, g *units.Graph) (available, shortfall decimal.Decimal, ok bool) {
	if e, direct := g.Edge(target, stockSymbol); direct && target != stockSymbol {
		needed := requested.Mul(e.Factor)
		available = total.Div(e.Factor)
		if total.GreaterThanOrEqual(needed) {
			return available, decimal.Zero, true
		}
		return available, needed.Sub(total).Div(e.Factor), true
	}
	available, ok = units.ConvertBetween(total, stockSymbol, target, g)
	if !ok {
		return decimal.Zero, decimal.Zero, false
	}
	if available.GreaterThanOrEqual(requested) {
		return available, decimal.Zero, true
	}
	return available, requested.Sub(available), true
}

func unconvertible(v Verdict, summary entity.StockSummary, target string) Verdict {
	v.Convertible = false
	v.Shortfall = v.Requested
	v.Message = fmt.Sprintf("⚠ No es posible convertir %s a %s para comparar el stock", unitLabel(summary), target)
	return v
}

// unitLabel símbolo de la unidad del stock; sin símbolo, su nombre.
func unitLabel(summary entity.StockSummary) string {
	switch {
	case summary.UnitSymbol != "":
		return summary.UnitSymbol
	case summary.UnitName != "":
		return summary.UnitName
	default:
		return "(sin unidad)"
	}
}

// IsSufficient indica si el stock cubre la solicitud; false si las unidades no son convertibles.
func IsSufficient(summary entity.StockSummary, req Request, g *units.Graph) bool {
	return Evaluate(summary, req, g).Sufficient
}

// Describe mensaje para mostrar al usuario sobre la disponibilidad.
func Describe(summary entity.StockSummary, req Request, g *units.Graph) string {
	return Evaluate(summary, req, g).Message
}

// shortfallText muestra el faltante con los decimales necesarios para que nunca
// se lea como 0.
func shortfallText(v decimal.Decimal, symbol string) string {
	decimals := units.DefaultDecimals
	for decimals < maxShortfallDecimals && units.Round(v, decimals).IsZero() {
		decimals++
	}
	s := units.FormatNumber(v, decimals)
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}

const maxShortfallDecimals int32 = 10

func quantityText(v decimal.Decimal, symbol string) string {
	s := units.FormatNumber(v, units.DefaultDecimals)
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}
