package postgres

import (
	"context"
	"fmt"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// ListInventoryRows lista el stock positivo de los productos cuyo nombre contiene nameFilter
// (ILIKE), con la unidad del producto y el depósito, de mayor a menor cantidad.
func (r *InventoryRepo) ListInventoryRows(ctx context.Context, nameFilter string) ([]entity.InventoryRow, error) {
	query := `
		SELECT l.id::text, l.name, p.name, i.quantity,
		       COALESCE(u.name, ''), COALESCE(u.symbol, ''), i.updated_at
		FROM inventory i
		JOIN products p  ON p.id = i.product_id
		JOIN locations l ON l.id = i.location_id
		LEFT JOIN units u ON u.id = p.unit_id
		WHERE p.name ILIKE $1
		  AND i.quantity > 0
		ORDER BY i.quantity DESC`
	rows, err := r.q.Query(ctx, query, containsPattern(nameFilter))
	if err != nil {
		return nil, fmt.Errorf("list inventory rows: %w", err)
	}
	defer rows.Close()
	var list []entity.InventoryRow
	for rows.Next() {
		var row entity.InventoryRow
		if err := rows.Scan(
			&row.LocationID, &row.LocationName, &row.ProductName, &row.Quantity,
			&row.UnitName, &row.UnitSymbol, &row.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
