package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/mintriago123/bancoalimentostest-sub002/internal/application/stock"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/infrastructure/pdf"
)

func TestGenerateStockReport_ProducePDF(t *testing.T) {
	updated := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	summary := appstock.Aggregate([]entity.InventoryRow{
		{LocationID: "a", LocationName: "Bodega Central", Quantity: decimal.RequireFromString("12.5"), UnitName: "Kilogramo", UnitSymbol: "kg", LastUpdated: &updated},
		{LocationID: "b", LocationName: "Bodega Norte", Quantity: decimal.RequireFromString("0.125"), UnitName: "Kilogramo", UnitSymbol: "kg"},
	}, nil)

	out, err := pdf.NewMarotoStockReport().GenerateStockReport(context.Background(), appstock.ReportData{
		Filter:      "Arroz",
		Summary:     summary,
		GeneratedAt: updated,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}
