package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/application/stock"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/repository"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/units"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/infrastructure/cache"
	infrapdf "github.com/mintriago123/bancoalimentostest-sub002/internal/infrastructure/pdf"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/infrastructure/postgres"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/infrastructure/sqlite"
	httpRouter "github.com/mintriago123/bancoalimentostest-sub002/internal/interfaces/http"
	"github.com/mintriago123/bancoalimentostest-sub002/pkg/config"
	"github.com/mintriago123/bancoalimentostest-sub002/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}
	units.SetDefaultLocale(language.Make(cfg.Stock.Locale))

	ctx := context.Background()
	var (
		conversions repository.ConversionRepository
		inventory   repository.InventoryRepository
	)
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.DB.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir SQLite")
		}
		defer db.Close()
		if err := sqlite.Migrate(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("migrar SQLite")
		}
		conversions = sqlite.NewConversionRepository(db)
		inventory = sqlite.NewInventoryRepository(db)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		conversions = postgres.NewConversionRepository(pool)
		inventory = postgres.NewInventoryRepository(pool)
	}

	// Las aristas cambian poco: opcionalmente se cachean (STOCK_EDGE_CACHE_TTL > 0).
	conversions = cache.NewEdgeCache(conversions, cfg.Stock.EdgeCacheTTL)

	stockUC := stock.NewStockUseCase(conversions, inventory, log)
	reportUC := stock.NewReportUseCase(stockUC, infrapdf.NewMarotoStockReport())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Banco de Alimentos: Stock API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:      stockUC,
		ReportUC:     reportUC,
		QueryTimeout: cfg.Stock.QueryTimeout,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
