package stock_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
)

type fakeConversions struct {
	edges []entity.ConversionEdge
	err   error
	calls int
}

func (f *fakeConversions) ListConversionEdges(context.Context) ([]entity.ConversionEdge, error) {
	f.calls++
	return f.edges, f.err
}

type fakeInventory struct {
	rows       []entity.InventoryRow
	err        error
	calls      int
	lastFilter string
}

func (f *fakeInventory) ListInventoryRows(_ context.Context, filter string) ([]entity.InventoryRow, error) {
	f.calls++
	f.lastFilter = filter
	return f.rows, f.err
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func massEdges() []entity.ConversionEdge {
	return []entity.ConversionEdge{
		{UnitFrom: "Kilogramo", SymbolFrom: "kg", UnitTo: "Gramo", SymbolTo: "g", Factor: dec("1000")},
		{UnitFrom: "Gramo", SymbolFrom: "g", UnitTo: "Kilogramo", SymbolTo: "kg", Factor: dec("0.001")},
		{UnitFrom: "Litro", SymbolFrom: "L", UnitTo: "Mililitro", SymbolTo: "ml", Factor: dec("1000")},
	}
}

func massGraph() *units.Graph { return units.NewGraph(massEdges()) }

func row(location, qty, symbol string) entity.InventoryRow {
	name := map[string]string{"kg": "Kilogramo", "g": "Gramo", "L": "Litro"}[symbol]
	return entity.InventoryRow{
		LocationID:   "id-" + location,
		LocationName: location,
		ProductName:  "Arroz",
		Quantity:     dec(qty),
		UnitName:     name,
		UnitSymbol:   symbol,
	}
}

func at(day int) *time.Time {
	t := time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC)
	return &t
}
