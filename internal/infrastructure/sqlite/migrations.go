package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate crea el esquema que leen los repositorios.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS units (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			name   TEXT NOT NULL,
			symbol TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS unit_conversions (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			unit_from_id INTEGER NOT NULL,
			unit_to_id   INTEGER NOT NULL,
			factor       NUMERIC NOT NULL CHECK (factor > 0),
			FOREIGN KEY(unit_from_id) REFERENCES units(id),
			FOREIGN KEY(unit_to_id) REFERENCES units(id)
		);`,
		`CREATE TABLE IF NOT EXISTS products (
			id      TEXT PRIMARY KEY,
			name    TEXT NOT NULL,
			unit_id INTEGER,
			FOREIGN KEY(unit_id) REFERENCES units(id)
		);`,
		`CREATE TABLE IF NOT EXISTS locations (
			id   TEXT PRIMARY KEY,
			name TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id          TEXT PRIMARY KEY,
			product_id  TEXT NOT NULL,
			location_id TEXT NOT NULL,
			quantity    NUMERIC NOT NULL DEFAULT 0,
			updated_at  TEXT,
			FOREIGN KEY(product_id) REFERENCES products(id),
			FOREIGN KEY(location_id) REFERENCES locations(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_inventory_product ON inventory(product_id);`,
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
