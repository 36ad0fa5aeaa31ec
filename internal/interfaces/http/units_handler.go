package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/application/dto"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/application/stock"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
)

// UnitsHandler expone el motor de conversiones (protegido).
type UnitsHandler struct {
	uc      *stock.StockUseCase
	timeout time.Duration
}

// NewUnitsHandler construye el handler. timeout <= 0 no limita la carga de aristas.
func NewUnitsHandler(uc *stock.StockUseCase, timeout time.Duration) *UnitsHandler {
	return &UnitsHandler{uc: uc, timeout: timeout}
}

// Convert godoc
// @Summary      Convertir un valor entre dos unidades
// @Tags         units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConvertRequest  true  "Valor y unidades"
// @Success      200   {object}  dto.ConvertResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/units/convert [post]
func (h *UnitsHandler) Convert(c *fiber.Ctx) error {
	var in dto.ConvertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.From, in.To = strings.TrimSpace(in.From), strings.TrimSpace(in.To)
	if in.From == "" || in.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to son requeridos"})
	}
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()
	g, err := h.uc.LoadGraph(ctx)
	if err != nil {
		return writeError(c, err)
	}
	result, ok := units.ConvertBetween(in.Value, in.From, in.To, g)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "UNCONVERTIBLE_UNITS",
			Message: "no existe conversión de " + in.From + " a " + in.To,
		})
	}
	return c.JSON(dto.ConvertResponse{
		Value:  in.Value,
		From:   in.From,
		To:     in.To,
		Result: result,
		Text:   units.FormatNumber(result, units.DefaultDecimals) + " " + in.To,
	})
}

// Display godoc
// @Summary      Elegir la unidad más legible para una cantidad
// @Tags         units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DisplayRequest  true  "Valor y símbolo"
// @Success      200   {object}  dto.DisplayQuantityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/units/display [post]
func (h *UnitsHandler) Display(c *fiber.Ctx) error {
	var in dto.DisplayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Value.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "value no puede ser negativo"})
	}
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()
	g, err := h.uc.LoadGraph(ctx)
	if err != nil {
		return writeError(c, err)
	}
	display := units.ConvertQuantity(entity.RawQuantity{
		Value:    in.Value,
		Symbol:   strings.TrimSpace(in.Symbol),
		UnitName: in.UnitName,
	}, g)
	return c.JSON(dto.NewDisplayQuantityResponse(display))
}

// Rules godoc
// @Summary      Tabla de reglas de legibilidad por unidad
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RuleResponse
// @Router       /api/units/rules [get]
func (h *UnitsHandler) Rules(c *fiber.Ctx) error {
	return c.JSON(dto.NewRuleResponses(units.Rules()))
}
