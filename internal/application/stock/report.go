package stock

import (
	"context"
	"strings"
	"time"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
)

// ReportData datos del reporte de stock por depósito.
type ReportData struct {
	Filter      string
	Summary     entity.StockSummary
	GeneratedAt time.Time
}

// ReportGenerator puerto para renderizar el reporte (PDF u otro formato).
type ReportGenerator interface {
	GenerateStockReport(ctx context.Context, data ReportData) ([]byte, error)
}

// ReportUseCase arma el reporte de stock de un producto.
type ReportUseCase struct {
	stock *StockUseCase
	gen   ReportGenerator
	now   func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(stock *StockUseCase, gen ReportGenerator) *ReportUseCase {
	return &ReportUseCase{stock: stock, gen: gen, now: time.Now}
}

// StockReport agrega el stock y lo renderiza. Sin filas devuelve domain.ErrNotFound.
func (uc *ReportUseCase) StockReport(ctx context.Context, filter string) ([]byte, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil, domain.ErrInvalidInput
	}
	summary, err := uc.stock.GetStockByProductName(ctx, filter)
	if err != nil {
		return nil, err
	}
	if !summary.ProductFound {
		return nil, domain.ErrNotFound
	}
	return uc.gen.GenerateStockReport(ctx, ReportData{
		Filter:      filter,
		Summary:     summary,
		GeneratedAt: uc.now(),
	})
}
