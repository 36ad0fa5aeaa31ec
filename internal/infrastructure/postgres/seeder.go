package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Seeder escribe catálogos y stock de prueba. El motor de stock solo lee; esto lo usa
// el comando de siembra.
type Seeder struct {
	q Querier
}

// NewSeeder construye el seeder sobre un pool o una transacción.
func NewSeeder(q Querier) *Seeder {
	return &Seeder{q: q}
}

// AddUnit inserta una unidad; un símbolo vacío se guarda como NULL.
func (s *Seeder) AddUnit(ctx context.Context, name, symbol string) (int64, error) {
	var sym *string
	if symbol != "" {
		sym = &symbol
	}
	var id int64
	err := s.q.QueryRow(ctx, `INSERT INTO units (name, symbol) VALUES ($1, $2) RETURNING id`, name, sym).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert unit %s: %w", name, err)
	}
	return id, nil
}

// AddConversion inserta la arista from -> to con el factor dado.
func (s *Seeder) AddConversion(ctx context.Context, fromID, toID int64, factor decimal.Decimal) error {
	_, err := s.q.Exec(ctx,
		`INSERT INTO unit_conversions (unit_from_id, unit_to_id, factor) VALUES ($1, $2, $3)`,
		fromID, toID, factor)
	if err != nil {
		return fmt.Errorf("insert conversion: %w", err)
	}
	return nil
}

// AddLocation inserta un depósito.
func (s *Seeder) AddLocation(ctx context.Context, id, name string) error {
	if _, err := s.q.Exec(ctx, `INSERT INTO locations (id, name) VALUES ($1, $2)`, id, name); err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// AddProduct inserta un producto con su unidad base.
func (s *Seeder) AddProduct(ctx context.Context, id, name string, unitID int64) error {
	if _, err := s.q.Exec(ctx, `INSERT INTO products (id, name, unit_id) VALUES ($1, $2, $3)`, id, name, unitID); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// AddStock inserta una fila de inventario. updatedAt nil queda como NULL.
func (s *Seeder) AddStock(ctx context.Context, id, productID, locationID string, qty decimal.Decimal, updatedAt *time.Time) error {
	_, err := s.q.Exec(ctx,
		`INSERT INTO inventory (id, product_id, location_id, quantity, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		id, productID, locationID, qty, updatedAt)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}
