package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// Seeder escribe catálogos y stock de prueba. El motor de stock solo lee; esto lo usan
// el comando de siembra y los tests de integración.
type Seeder struct {
	db *sqlx.DB
}

// NewSeeder construye el seeder.
func NewSeeder(db *sqlx.DB) *Seeder {
	return &Seeder{db: db}
}

// AddUnit inserta una unidad; un símbolo vacío se guarda como NULL.
func (s *Seeder) AddUnit(ctx context.Context, name, symbol string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO units (name, symbol) VALUES (?, ?)`,
		name, sql.NullString{String: symbol, Valid: symbol != ""})
	if err != nil {
		return 0, fmt.Errorf("insert unit %s: %w", name, err)
	}
	return res.LastInsertId()
}

// AddConversion inserta la arista from -> to con el factor dado.
func (s *Seeder) AddConversion(ctx context.Context, fromID, toID int64, factor decimal.Decimal) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO unit_conversions (unit_from_id, unit_to_id, factor) VALUES (?, ?, ?)`,
		fromID, toID, factor.String())
	if err != nil {
		return fmt.Errorf("insert conversion: %w", err)
	}
	return nil
}

// AddLocation inserta un depósito.
func (s *Seeder) AddLocation(ctx context.Context, id, name string) error {
	if _, err := s.db.ExecContext(ctx, `INSERT INTO locations (id, name) VALUES (?, ?)`, id, name); err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// AddProduct inserta un producto con su unidad base.
func (s *Seeder) AddProduct(ctx context.Context, id, name string, unitID int64) error {
	if _, err := s.db.ExecContext(ctx, `INSERT INTO products (id, name, unit_id) VALUES (?, ?, ?)`, id, name, unitID); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// AddStock inserta una fila de inventario. updatedAt nil queda como NULL.
func (s *Seeder) AddStock(ctx context.Context, id, productID, locationID string, qty decimal.Decimal, updatedAt *time.Time) error {
	var ts sql.NullString
	if updatedAt != nil {
		ts = sql.NullString{String: updatedAt.UTC().Format(time.RFC3339), Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inventory (id, product_id, location_id, quantity, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, productID, locationID, qty.String(), ts)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}
