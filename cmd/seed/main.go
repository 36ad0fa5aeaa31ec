// seed crea el esquema del almacén configurado (DB_DRIVER) y lo puebla con el catálogo
// estándar de unidades, sus conversiones y stock de demostración.
//
// Uso: go run ./cmd/seed            (catálogo + stock demo)
//
//	go run ./cmd/seed -catalog  (solo unidades y conversiones)
package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/infrastructure/postgres"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/infrastructure/sqlite"
	"github.com/mintriago123/bancoalimentostest-sub002/pkg/config"
	"github.com/mintriago123/bancoalimentostest-sub002/pkg/logger"
)

// catalogWriter lo implementan postgres.Seeder y sqlite.Seeder.
type catalogWriter interface {
	AddUnit(ctx context.Context, name, symbol string) (int64, error)
	AddConversion(ctx context.Context, fromID, toID int64, factor decimal.Decimal) error
	AddLocation(ctx context.Context, id, name string) error
	AddProduct(ctx context.Context, id, name string, unitID int64) error
	AddStock(ctx context.Context, id, productID, locationID string, qty decimal.Decimal, updatedAt *time.Time) error
}

type unitDef struct{ name, symbol string }

var standardUnits = []unitDef{
	{"Kilogramo", "kg"}, {"Gramo", "g"}, {"Miligramo", "mg"}, {"Tonelada", "t"},
	{"Litro", "L"}, {"Mililitro", "ml"}, {"Galón", "gal"}, {"Metro cúbico", "m³"},
	{"Unidad", "ud"}, {"Docena", "doc"},
	{"Paquete", ""}, // sin símbolo: nunca se convierte
}

type edgeDef struct{ from, to, factor string }

var standardEdges = []edgeDef{
	{"kg", "g", "1000"},
	{"g", "kg", "0.001"},
	{"t", "kg", "1000"},
	{"mg", "g", "0.001"},
	{"L", "ml", "1000"},
	{"ml", "L", "0.001"},
	{"gal", "L", "3.78541"},
	{"m³", "L", "1000"},
	{"doc", "ud", "12"},
	{"ud", "doc", "0.0833333333"},
}

func main() {
	catalogOnly := flag.Bool("catalog", false, "sembrar solo unidades y conversiones")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seed := func(w catalogWriter) error {
		ids, err := seedCatalog(ctx, w)
		if err != nil {
			return err
		}
		if *catalogOnly {
			return nil
		}
		return seedDemoStock(ctx, w, ids)
	}

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
		if err := seed(sqlite.NewSeeder(db)); err != nil {
			log.Fatal().Err(err).Msg("sembrar SQLite")
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migrar PostgreSQL")
		}
		err = postgres.NewTxRunner(pool).RunSeed(ctx, func(s *postgres.Seeder) error { return seed(s) })
		if err != nil {
			log.Fatal().Err(err).Msg("sembrar PostgreSQL")
		}
	}

	log.Info().
		Str("driver", cfg.DB.Driver).
		Int("unidades", len(standardUnits)).
		Int("conversiones", len(standardEdges)).
		Bool("solo_catalogo", *catalogOnly).
		Msg("siembra completada")
}

// seedCatalog inserta unidades y aristas; devuelve el id de cada símbolo (y de cada
// nombre, para las unidades sin símbolo).
func seedCatalog(ctx context.Context, w catalogWriter) (map[string]int64, error) {
	ids := make(map[string]int64, len(standardUnits))
	for _, u := range standardUnits {
		id, err := w.AddUnit(ctx, u.name, u.symbol)
		if err != nil {
			return nil, err
		}
		ids[u.name] = id
		if u.symbol != "" {
			ids[u.symbol] = id
		}
	}
	for _, e := range standardEdges {
		if err := w.AddConversion(ctx, ids[e.from], ids[e.to], decimal.RequireFromString(e.factor)); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

type stockDef struct {
	location string
	qty      string
}

type productDef struct {
	name  string
	unit  string
	stock []stockDef
}

var demoProducts = []productDef{
	{"Arroz blanco", "kg", []stockDef{{"Bodega Central", "120.5"}, {"Bodega Norte", "0.35"}}},
	{"Aceite vegetal", "L", []stockDef{{"Bodega Central", "0.125"}, {"Bodega Sur", "18"}}},
	{"Huevos", "ud", []stockDef{{"Bodega Central", "36"}, {"Bodega Norte", "12"}}},
	{"Leche en polvo", "g", []stockDef{{"Bodega Sur", "2500"}}},
	{"Galletas", "Paquete", []stockDef{{"Bodega Norte", "40"}}},
}

func seedDemoStock(ctx context.Context, w catalogWriter, unitIDs map[string]int64) error {
	now := time.Now().UTC()
	locations := make(map[string]string)
	for _, p := range demoProducts {
		productID := uuid.NewString()
		if err := w.AddProduct(ctx, productID, p.name, unitIDs[p.unit]); err != nil {
			return err
		}
		for _, s := range p.stock {
			locID, ok := locations[s.location]
			if !ok {
				locID = uuid.NewString()
				if err := w.AddLocation(ctx, locID, s.location); err != nil {
					return err
				}
				locations[s.location] = locID
			}
			if err := w.AddStock(ctx, uuid.NewString(), productID, locID, decimal.RequireFromString(s.qty), &now); err != nil {
				return err
			}
		}
	}
	return nil
}
