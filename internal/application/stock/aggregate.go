package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
)

// Aggregate agrupa las filas por nombre de depósito (en orden de aparición), suma las
// cantidades de cada depósito y el total general. La forma de presentación se recalcula
// siempre desde la suma cruda, nunca sumando cantidades ya convertidas.
func Aggregate(rows []entity.InventoryRow, g *units.Graph) entity.StockSummary {
	if len(rows) == 0 {
		return entity.EmptyStockSummary()
	}

	order := make([]string, 0, len(rows))
	byLocation := make(map[string]entity.LocationStock, len(rows))
	for _, row := range rows {
		acc, seen := byLocation[row.LocationName]
		if !seen {
			order = append(order, row.LocationName)
			acc = entity.LocationStock{
				LocationID:   row.LocationID,
				LocationName: row.LocationName,
				Quantity:     decimal.Zero,
				UnitName:     row.UnitName,
				UnitSymbol:   row.UnitSymbol,
			}
		}
		byLocation[row.LocationName] = accumulate(acc, row, g)
	}

	summary := entity.StockSummary{
		TotalQuantity: decimal.Zero,
		Locations:     make([]entity.LocationStock, 0, len(order)),
		ProductFound:  true,
	}
	for _, name := range order {
		loc := byLocation[name]
		summary.Locations = append(summary.Locations, loc)
		summary.TotalQuantity = summary.TotalQuantity.Add(loc.Quantity)
	}

	// Todas las filas de un producto comparten unidad base: se toma la del primer depósito.
	first := summary.Locations[0]
	summary.UnitName = first.UnitName
	summary.UnitSymbol = first.UnitSymbol
	total := units.ConvertQuantity(entity.RawQuantity{
		Value:    summary.TotalQuantity,
		Symbol:   first.UnitSymbol,
		UnitName: first.UnitName,
	}, g)
	summary.TotalDisplay = &total
	return summary
}

// accumulate devuelve un acumulador nuevo con la fila sumada y el display recalculado.
func accumulate(acc entity.LocationStock, row entity.InventoryRow, g *units.Graph) entity.LocationStock {
	unitName, unitSymbol := acc.UnitName, acc.UnitSymbol
	if unitSymbol == "" {
		unitName, unitSymbol = row.UnitName, row.UnitSymbol
	}
	qty := acc.Quantity.Add(row.Quantity)
	return entity.LocationStock{
		LocationID:   acc.LocationID,
		LocationName: acc.LocationName,
		Quantity:     qty,
		LastUpdated:  latest(acc.LastUpdated, row.LastUpdated),
		UnitName:     unitName,
		UnitSymbol:   unitSymbol,
		Display: units.ConvertQuantity(entity.RawQuantity{
			Value:    qty,
			Symbol:   unitSymbol,
			UnitName: unitName,
		}, g),
	}
}

func latest(a, b *time.Time) *time.Time {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		t := *b
		return &t
	case b == nil || !b.After(*a):
		t := *a
		return &t
	default:
		t := *b
		return &t
	}
}
