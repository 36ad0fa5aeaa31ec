package stock

import (
	"context"
	"fmt"
	"strings"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/repository"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
	"github.com/mintriago123/bancoalimentostest-sub002/pkg/logger"
)

// StockUseCase consulta el stock de un producto en todos los depósitos y evalúa
// si alcanza para una solicitud. No guarda estado entre llamadas: cada consulta
// carga sus propias aristas de conversión y filas de inventario.
type StockUseCase struct {
	conversions repository.ConversionRepository
	inventory   repository.InventoryRepository
	log         *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	conversions repository.ConversionRepository,
	inventory repository.InventoryRepository,
	log *logger.Logger,
) *StockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockUseCase{
		conversions: conversions,
		inventory:   inventory,
		log:         log.Component("stock"),
	}
}

// GetStockByProductName devuelve el stock agregado de los productos cuyo nombre contiene
// nameFilter. Un filtro vacío devuelve un resumen vacío sin consultar el almacén.
// Un fallo del almacén se devuelve como domain.ErrDataAccess, nunca como stock cero.
func (uc *StockUseCase) GetStockByProductName(ctx context.Context, nameFilter string) (entity.StockSummary, error) {
	summary, _, err := uc.aggregate(ctx, nameFilter)
	return summary, err
}

// CheckSufficiency agrega el stock del producto y lo compara con la cantidad pedida,
// usando el mismo conjunto de aristas para ambas operaciones.
func (uc *StockUseCase) CheckSufficiency(ctx context.Context, req Request) (entity.StockSummary, Verdict, error) {
	if strings.TrimSpace(req.Product) == "" || req.Quantity.IsNegative() {
		return entity.StockSummary{}, Verdict{}, domain.ErrInvalidInput
	}
	summary, g, err := uc.aggregate(ctx, req.Product)
	if err != nil {
		return entity.StockSummary{}, Verdict{}, err
	}
	verdict := Evaluate(summary, req, g)
	uc.log.Debug().
		Str("producto", req.Product).
		Str("solicitado", req.Quantity.String()).
		Str("unidad", verdict.Symbol).
		Bool("suficiente", verdict.Sufficient).
		Bool("convertible", verdict.Convertible).
		Msg("evaluación de suficiencia")
	return summary, verdict, nil
}

// LoadGraph carga las aristas de conversión vigentes.
func (uc *StockUseCase) LoadGraph(ctx context.Context) (*units.Graph, error) {
	edges, err := uc.conversions.ListConversionEdges(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar conversiones")
		return nil, fmt.Errorf("%w: listar conversiones: %w", domain.ErrDataAccess, err)
	}
	g := units.NewGraph(edges)
	if skipped := len(edges) - g.Len(); skipped > 0 {
		uc.log.Warn().Int("descartadas", skipped).Msg("aristas de conversión inválidas o duplicadas")
	}
	return g, nil
}

func (uc *StockUseCase) aggregate(ctx context.Context, nameFilter string) (entity.StockSummary, *units.Graph, error) {
	filter := strings.TrimSpace(nameFilter)
	if filter == "" {
		return entity.EmptyStockSummary(), units.NewGraph(nil), nil
	}

	g, err := uc.LoadGraph(ctx)
	if err != nil {
		return entity.StockSummary{}, nil, err
	}

	rows, err := uc.inventory.ListInventoryRows(ctx, filter)
	if err != nil {
		uc.log.Error().Err(err).Str("filtro", filter).Msg("listar inventario")
		return entity.StockSummary{}, nil, fmt.Errorf("%w: listar inventario: %w", domain.ErrDataAccess, err)
	}

	if e := uc.log.Debug(); e.Enabled() {
		for _, row := range rows {
			d := units.ConvertQuantity(entity.RawQuantity{Value: row.Quantity, Symbol: row.UnitSymbol, UnitName: row.UnitName}, g)
			uc.log.Debug().
				Str("deposito", row.LocationName).
				Str("cantidad", units.PrimaryWithOriginal(d)).
				Msg("fila de inventario")
		}
		e.Discard()
	}

	summary := Aggregate(rows, g)
	uc.log.Debug().
		Str("filtro", filter).
		Int("filas", len(rows)).
		Int("depositos", len(summary.Locations)).
		Str("total", summary.TotalQuantity.String()).
		Msg("stock agregado")
	return summary, g, nil
}
