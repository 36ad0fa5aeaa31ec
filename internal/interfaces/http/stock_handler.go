package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/application/dto"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/application/stock"
)

// StockHandler maneja las consultas de stock por producto (protegido).
type StockHandler struct {
	uc      *stock.StockUseCase
	report  *stock.ReportUseCase
	timeout time.Duration
}

// NewStockHandler construye el handler. timeout <= 0 no limita las consultas.
func NewStockHandler(uc *stock.StockUseCase, report *stock.ReportUseCase, timeout time.Duration) *StockHandler {
	return &StockHandler{uc: uc, report: report, timeout: timeout}
}

// requestContext contexto de la petición limitado por STOCK_QUERY_TIMEOUT.
func requestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), timeout)
}

// GetStock godoc
// @Summary      Stock de un producto por depósito
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product  query  string  true  "Nombre o parte del nombre del producto"
// @Success      200  {object}  dto.StockSummaryResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	product := strings.TrimSpace(c.Query("product"))
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	summary, err := h.uc.GetStockByProductName(ctx, product)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewStockSummaryResponse(product, summary))
}

// CheckSufficiency godoc
// @Summary      Verificar si el stock cubre una cantidad solicitada
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SufficiencyRequest  true  "Producto, cantidad y unidad"
// @Success      200   {object}  dto.SufficiencyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/stock/sufficiency [post]
func (h *StockHandler) CheckSufficiency(c *fiber.Ctx) error {
	var in dto.SufficiencyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	summary, verdict, err := h.uc.CheckSufficiency(ctx, stock.Request{
		Product:  in.Product,
		Quantity: in.Quantity,
		Symbol:   strings.TrimSpace(in.Unit),
	})
	if err != nil {
		return writeError(c, err)
	}
	product := strings.TrimSpace(in.Product)
	return c.JSON(dto.SufficiencyResponse{
		Product:     product,
		Sufficient:  verdict.Sufficient,
		Convertible: verdict.Convertible,
		Available:   verdict.Available,
		Requested:   verdict.Requested,
		Shortfall:   verdict.Shortfall,
		Unit:        verdict.Symbol,
		Message:     verdict.Message,
		Stock:       dto.NewStockSummaryResponse(product, summary),
	})
}

// Report godoc
// @Summary      Reporte PDF de stock por depósito
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        product  query  string  true  "Nombre o parte del nombre del producto"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) Report(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	pdfBytes, err := h.report.StockReport(ctx, c.Query("product"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="stock.pdf"`)
	return c.Send(pdfBytes)
}
