package postgres

import (
	"context"
	"fmt"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/repository"
)

var _ repository.ConversionRepository = (*ConversionRepo)(nil)

// ConversionRepo implementación de ConversionRepository sobre PostgreSQL.
type ConversionRepo struct {
	q Querier
}

// NewConversionRepository construye el adaptador. Acepta pool o tx (Querier).
func NewConversionRepository(q Querier) *ConversionRepo {
	return &ConversionRepo{q: q}
}

// ListConversionEdges devuelve todas las conversiones con nombre y símbolo de ambas unidades.
func (r *ConversionRepo) ListConversionEdges(ctx context.Context) ([]entity.ConversionEdge, error) {
	query := `
		SELECT COALESCE(uf.name, ''), COALESCE(uf.symbol, ''),
		       COALESCE(ut.name, ''), COALESCE(ut.symbol, ''),
		       c.factor
		FROM unit_conversions c
		JOIN units uf ON uf.id = c.unit_from_id
		JOIN units ut ON ut.id = c.unit_to_id
		ORDER BY c.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer rows.Close()
	var list []entity.ConversionEdge
	for rows.Next() {
		var e entity.ConversionEdge
		if err := rows.Scan(&e.UnitFrom, &e.SymbolFrom, &e.UnitTo, &e.SymbolTo, &e.Factor); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
