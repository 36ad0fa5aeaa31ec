package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
)

// DisplayQuantityResponse cantidad lista para mostrar.
type DisplayQuantityResponse struct {
	Value          decimal.Decimal `json:"value"`
	Symbol         string          `json:"symbol"`
	UnitName       string          `json:"unit_name,omitempty"`
	OriginalValue  decimal.Decimal `json:"original_value"`
	OriginalSymbol string          `json:"original_symbol"`
	WasConverted   bool            `json:"was_converted"`
	Text           string          `json:"text"`         // "113.79 g (0.11 kg)"
	PrimaryText    string          `json:"primary_text"` // "113.79 g"
}

// LocationStockResponse stock de un depósito.
type LocationStockResponse struct {
	LocationID   string                  `json:"location_id"`
	LocationName string                  `json:"location_name"`
	Quantity     decimal.Decimal         `json:"quantity"`
	UnitName     string                  `json:"unit_name"`
	UnitSymbol   string                  `json:"unit_symbol"`
	LastUpdated  *time.Time              `json:"last_updated,omitempty"`
	Display      DisplayQuantityResponse `json:"display"`
}

// StockSummaryResponse resumen de stock de un producto.
type StockSummaryResponse struct {
	Product       string                   `json:"product"`
	ProductFound  bool                     `json:"product_found"`
	TotalQuantity decimal.Decimal          `json:"total_quantity"`
	UnitName      string                   `json:"unit_name,omitempty"`
	UnitSymbol    string                   `json:"unit_symbol,omitempty"`
	TotalDisplay  *DisplayQuantityResponse `json:"total_display,omitempty"`
	Locations     []LocationStockResponse  `json:"locations"`
}

// SufficiencyRequest cuerpo de POST /api/stock/sufficiency.
type SufficiencyRequest struct {
	Product  string          `json:"product"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// SufficiencyResponse veredicto de suficiencia de stock.
type SufficiencyResponse struct {
	Product     string               `json:"product"`
	Sufficient  bool                 `json:"sufficient"`
	Convertible bool                 `json:"convertible"`
	Available   decimal.Decimal      `json:"available"`
	Requested   decimal.Decimal      `json:"requested"`
	Shortfall   decimal.Decimal      `json:"shortfall"`
	Unit        string               `json:"unit"`
	Message     string               `json:"message"`
	Stock       StockSummaryResponse `json:"stock"`
}

// NewDisplayQuantityResponse mapea una cantidad de presentación.
func NewDisplayQuantityResponse(d entity.DisplayQuantity) DisplayQuantityResponse {
	return DisplayQuantityResponse{
		Value:          d.Value,
		Symbol:         d.Symbol,
		UnitName:       d.UnitName,
		OriginalValue:  d.OriginalValue,
		OriginalSymbol: d.OriginalSymbol,
		WasConverted:   d.WasConverted,
		Text:           units.PrimaryWithOriginal(d),
		PrimaryText:    units.Primary(d),
	}
}

// NewStockSummaryResponse mapea el resumen agregado.
func NewStockSummaryResponse(product string, s entity.StockSummary) StockSummaryResponse {
	out := StockSummaryResponse{
		Product:       product,
		ProductFound:  s.ProductFound,
		TotalQuantity: s.TotalQuantity,
		UnitName:      s.UnitName,
		UnitSymbol:    s.UnitSymbol,
		Locations:     make([]LocationStockResponse, 0, len(s.Locations)),
	}
	if s.TotalDisplay != nil {
		d := NewDisplayQuantityResponse(*s.TotalDisplay)
		out.TotalDisplay = &d
	}
	for _, loc := range s.Locations {
		out.Locations = append(out.Locations, LocationStockResponse{
			LocationID:   loc.LocationID,
			LocationName: loc.LocationName,
			Quantity:     loc.Quantity,
			UnitName:     loc.UnitName,
			UnitSymbol:   loc.UnitSymbol,
			LastUpdated:  loc.LastUpdated,
			Display:      NewDisplayQuantityResponse(loc.Display),
		})
	}
	return out
}
