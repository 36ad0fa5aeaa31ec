package dto

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
)

// ConvertRequest cuerpo de POST /api/units/convert.
type ConvertRequest struct {
	Value decimal.Decimal `json:"value"`
	From  string          `json:"from"`
	To    string          `json:"to"`
}

// ConvertResponse valor convertido.
type ConvertResponse struct {
	Value  decimal.Decimal `json:"value"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Result decimal.Decimal `json:"result"`
	Text   string          `json:"text"`
}

// DisplayRequest cuerpo de POST /api/units/display.
type DisplayRequest struct {
	Value    decimal.Decimal `json:"value"`
	Symbol   string          `json:"symbol"`
	UnitName string          `json:"unit_name"`
}

// RuleResponse regla de legibilidad de una unidad.
type RuleResponse struct {
	Symbol              string           `json:"symbol"`
	Family              string           `json:"family"`
	Min                 decimal.Decimal  `json:"min"`
	Max                 *decimal.Decimal `json:"max,omitempty"` // nil = sin límite superior
	Targets             []string         `json:"targets"`
	OnlyWhenOverPrecise bool             `json:"only_when_over_precise"`
}

// NewRuleResponses mapea la tabla de reglas ordenada por familia y símbolo.
func NewRuleResponses(rules map[string]units.Rule) []RuleResponse {
	out := make([]RuleResponse, 0, len(rules))
	for sym, r := range rules {
		item := RuleResponse{
			Symbol:              sym,
			Family:              string(r.Family),
			Min:                 r.Range.Min,
			Targets:             r.Targets,
			OnlyWhenOverPrecise: r.OnlyWhenOverPrecise,
		}
		if !r.Range.Unbounded {
			max := r.Range.Max
			item.Max = &max
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}
