package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

type inventoryRecord struct {
	LocationID   string          `db:"location_id"`
	LocationName string          `db:"location_name"`
	ProductName  string          `db:"product_name"`
	Quantity     decimal.Decimal `db:"quantity"`
	UnitName     string          `db:"unit_name"`
	UnitSymbol   string          `db:"unit_symbol"`
	UpdatedAt    sql.NullString  `db:"updated_at"`
}

// InventoryRepo implementación de InventoryRepository sobre SQLite.
type InventoryRepo struct {
	db *sqlx.DB
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(db *sqlx.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

// ListInventoryRows lista el stock positivo de los productos cuyo nombre contiene nameFilter,
// sin distinguir mayúsculas. LIKE de SQLite solo pliega ASCII ("AZÚCAR" no encontraría
// "Azúcar"), así que el filtro se aplica aquí con plegado Unicode de x/text/cases.
func (r *InventoryRepo) ListInventoryRows(ctx context.Context, nameFilter string) ([]entity.InventoryRow, error) {
	var records []inventoryRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT l.id                    AS location_id,
		       l.name                  AS location_name,
		       p.name                  AS product_name,
		       i.quantity              AS quantity,
		       COALESCE(u.name, '')    AS unit_name,
		       COALESCE(u.symbol, '')  AS unit_symbol,
		       i.updated_at            AS updated_at
		FROM inventory i
		JOIN products p  ON p.id = i.product_id
		JOIN locations l ON l.id = i.location_id
		LEFT JOIN units u ON u.id = p.unit_id
		WHERE i.quantity > 0
		ORDER BY i.quantity DESC`)
	if err != nil {
		return nil, fmt.Errorf("list inventory rows: %w", err)
	}
	match := newNameMatcher(nameFilter)
	rows := make([]entity.InventoryRow, 0, len(records))
	for _, rec := range records {
		if !match(rec.ProductName) {
			continue
		}
		row := entity.InventoryRow{
			LocationID:   rec.LocationID,
			LocationName: rec.LocationName,
			ProductName:  rec.ProductName,
			Quantity:     rec.Quantity,
			UnitName:     rec.UnitName,
			UnitSymbol:   rec.UnitSymbol,
		}
		// Fecha ilegible: se trata como desconocida, no invalida la fila.
		if rec.UpdatedAt.Valid {
			if ts, err := time.Parse(time.RFC3339, rec.UpdatedAt.String); err == nil {
				row.LastUpdated = &ts
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// newNameMatcher devuelve un predicado de subcadena con plegado de mayúsculas Unicode.
// cases.Caser no es seguro para uso concurrente: uno por consulta.
func newNameMatcher(filter string) func(name string) bool {
	fold := cases.Fold()
	needle := fold.String(filter)
	return func(name string) bool {
		return strings.Contains(fold.String(name), needle)
	}
}
