// Package pdf genera el reporte de stock por depósito de un producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + filtro        │  fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Depósito | Cantidad | Presentación | Actualizado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: cantidad total en unidad base y presentación        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appstock "github.com/mintriago123/bancoalimentostest-sub002/internal/application/stock"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
)

var _ appstock.ReportGenerator = (*MarotoStockReport)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStockReport implementa stock.ReportGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(_ context.Context, data appstock.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(locationRows(data.Summary.Locations)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(data.Summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data appstock.ReportData) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("STOCK POR DEPÓSITO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Producto: %q", data.Filter), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Depósito", 4, align.Left),
		h("Cantidad", 2, align.Right),
		h("Presentación", 4, align.Right),
		h("Actualizado", 2, align.Right),
	)
}

// locationRows: una fila por depósito.
func locationRows(locations []entity.LocationStock) []core.Row {
	rows := make([]core.Row, 0, len(locations))
	for _, loc := range locations {
		updated := "-"
		if loc.LastUpdated != nil {
			updated = loc.LastUpdated.Format("02/01/2006")
		}
		raw := units.FormatNumber(loc.Quantity, units.DefaultDecimals) + " " + loc.UnitSymbol
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(loc.LocationName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(raw, props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(4).Add(text.New(units.PrimaryWithOriginal(loc.Display), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(updated, props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func totalRow(s entity.StockSummary) core.Row {
	display := "-"
	if s.TotalDisplay != nil {
		display = units.PrimaryWithOriginal(*s.TotalDisplay)
	}
	return row.New(10).Add(
		col.New(4).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		})),
		col.New(2).Add(text.New(units.FormatNumber(s.TotalQuantity, units.DefaultDecimals)+" "+s.UnitSymbol, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
		})),
		col.New(4).Add(text.New(display, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
		col.New(2),
	)
}
