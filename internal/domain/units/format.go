package units

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultDecimals precisión usada para mostrar cantidades.
const DefaultDecimals int32 = 2

var groupingThreshold = decimal.NewFromInt(10000)

var defaultFormatter = NewFormatter(language.Spanish)

// Round redondea v a decimals posiciones. Un valor entero se devuelve sin cambios.
func Round(v decimal.Decimal, decimals int32) decimal.Decimal {
	if v.IsInteger() {
		return v
	}
	return v.Round(decimals)
}

// FormatNumber redondea y formatea con el locale por defecto (español).
func FormatNumber(v decimal.Decimal, decimals int32) string {
	return defaultFormatter.Format(v, decimals)
}

// SetDefaultLocale cambia el locale usado por FormatNumber y por los textos de cantidades.
// Se llama una vez al arrancar, antes de atender peticiones.
func SetDefaultLocale(tag language.Tag) {
	defaultFormatter = NewFormatter(tag)
}

// Formatter formatea cantidades con separador de miles según un locale.
type Formatter struct {
	tag language.Tag
}

// NewFormatter construye un formateador para el locale indicado.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{tag: tag}
}

// Format aplica Round y, si el resultado es >= 10000, agrupa miles según el locale.
// Por debajo de ese umbral devuelve el numeral plano ("113.79").
func (f *Formatter) Format(v decimal.Decimal, decimals int32) string {
	r := Round(v, decimals)
	if r.LessThan(groupingThreshold) {
		return r.String()
	}
	// message.Printer no es seguro para uso concurrente: uno por llamada.
	p := message.NewPrinter(f.tag)
	return p.Sprint(number.Decimal(r.InexactFloat64(), number.MaxFractionDigits(int(decimals))))
}

// decimalPlaces cuenta los dígitos tras el punto en la representación por defecto del valor.
func decimalPlaces(v decimal.Decimal) int {
	s := v.String()
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}
