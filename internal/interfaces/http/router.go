package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC      *stock.StockUseCase
	ReportUC     *stock.ReportUseCase
	QueryTimeout time.Duration
	JWTSecret    string
}

// Router registra las rutas de la API. Todas requieren Bearer Token con rol admin u operador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret), RequireRole(RoleAdmin, RoleOperador))

	// Stock
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.ReportUC, deps.QueryTimeout)
	stockGroup.Get("/", stockHandler.GetStock)
	stockGroup.Post("/sufficiency", stockHandler.CheckSufficiency)
	stockGroup.Get("/report.pdf", stockHandler.Report)

	// Conversiones de unidades
	unitsGroup := api.Group("/units")
	unitsHandler := NewUnitsHandler(deps.StockUC, deps.QueryTimeout)
	unitsGroup.Post("/convert", unitsHandler.Convert)
	unitsGroup.Post("/display", unitsHandler.Display)
	unitsGroup.Get("/rules", unitsHandler.Rules)
}
