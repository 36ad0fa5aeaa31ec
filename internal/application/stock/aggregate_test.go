package stock_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/application/stock"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
)

func TestAggregate_MismoDepositoSeSuma(t *testing.T) {
	rows := []entity.InventoryRow{
		row("Bodega A", "2.5", "kg"),
		row("Bodega A", "1.5", "kg"),
		row("Bodega A", "0.5", "kg"),
	}
	s := stock.Aggregate(rows, massGraph())

	require.True(t, s.ProductFound)
	require.Len(t, s.Locations, 1)
	loc := s.Locations[0]
	assert.True(t, dec("4.5").Equal(loc.Quantity))
	assert.False(t, loc.Display.WasConverted, "4.5 kg está fuera del rango kg->g")
	assert.True(t, dec("4.5").Equal(loc.Display.Value))
	assert.True(t, dec("4.5").Equal(s.TotalQuantity))
	assert.Equal(t, "kg", s.UnitSymbol)
	require.NotNil(t, s.TotalDisplay)
	assert.Equal(t, "kg", s.TotalDisplay.Symbol)
}

func TestAggregate_DisplaySeRecalculaDesdeLaSuma(t *testing.T) {
	// 800 g y 900 g por separado no se convierten; la suma 1700 g sí (1.7 kg).
	s := stock.Aggregate([]entity.InventoryRow{
		row("Bodega A", "800", "g"),
		row("Bodega A", "900", "g"),
	}, massGraph())

	loc := s.Locations[0]
	assert.True(t, loc.Display.WasConverted)
	assert.Equal(t, "kg", loc.Display.Symbol)
	assert.True(t, dec("1.7").Equal(loc.Display.Value))
	assert.True(t, dec("1700").Equal(loc.Quantity), "la cantidad cruda queda en la unidad base")

	// 0.2 kg no se convierte; 0.2 + 0.013 = 0.213 kg sí (213 g).
	s = stock.Aggregate([]entity.InventoryRow{
		row("Bodega B", "0.2", "kg"),
		row("Bodega B", "0.013", "kg"),
	}, massGraph())
	assert.True(t, s.Locations[0].Display.WasConverted)
	assert.True(t, dec("213").Equal(s.Locations[0].Display.Value))
	assert.True(t, s.TotalDisplay.WasConverted)
}

func TestAggregate_OrdenDeDepositosYFecha(t *testing.T) {
	r1 := row("Bodega Norte", "10", "kg")
	r1.LastUpdated = at(2)
	r2 := row("Bodega Sur", "8", "kg")
	r3 := row("Bodega Norte", "3", "kg")
	r3.LastUpdated = at(9)
	r4 := row("Bodega Norte", "1", "kg")
	r4.LastUpdated = at(5)

	s := stock.Aggregate([]entity.InventoryRow{r1, r2, r3, r4}, massGraph())

	require.Len(t, s.Locations, 2)
	assert.Equal(t, "Bodega Norte", s.Locations[0].LocationName)
	assert.Equal(t, "Bodega Sur", s.Locations[1].LocationName)
	require.NotNil(t, s.Locations[0].LastUpdated)
	assert.True(t, s.Locations[0].LastUpdated.Equal(*at(9)), "se conserva la fecha más reciente")
	assert.Nil(t, s.Locations[1].LastUpdated)
	assert.True(t, dec("14").Equal(s.Locations[0].Quantity))
}

func TestAggregate_AditividadIndependienteDelOrden(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	locations := []string{"A", "B", "C", "D", "E"}

	for n := 1; n <= 40; n++ {
		rows := make([]entity.InventoryRow, 0, n)
		want := decimal.Zero
		for i := 0; i < n; i++ {
			qty := decimal.New(rng.Int63n(100000)+1, -3) // 0.001 .. 100.000
			want = want.Add(qty)
			r := row(locations[rng.Intn(len(locations))], "0", "kg")
			r.Quantity = qty
			rows = append(rows, r)
		}
		for round := 0; round < 3; round++ {
			rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
			s := stock.Aggregate(rows, massGraph())

			assert.True(t, want.Equal(s.TotalQuantity), "n=%d total %s != %s", n, s.TotalQuantity, want)
			sum := decimal.Zero
			for _, loc := range s.Locations {
				sum = sum.Add(loc.Quantity)
			}
			assert.True(t, sum.Equal(s.TotalQuantity))
		}
	}
}

func TestAggregate_SinFilas(t *testing.T) {
	s := stock.Aggregate(nil, massGraph())
	assert.False(t, s.ProductFound)
	assert.Empty(t, s.Locations)
	assert.True(t, s.TotalQuantity.IsZero())
	assert.Nil(t, s.TotalDisplay)
}

func TestAggregate_FilaSinSimboloNoRompeElResumen(t *testing.T) {
	bad := row("Bodega A", "0.12345", "")
	good := row("Bodega B", "2", "kg")
	s := stock.Aggregate([]entity.InventoryRow{good, bad}, massGraph())

	require.Len(t, s.Locations, 2)
	assert.False(t, s.Locations[1].Display.WasConverted)
	assert.True(t, dec("0.12").Equal(s.Locations[1].Display.Value))
	assert.True(t, dec("2.12345").Equal(s.TotalQuantity))
}
