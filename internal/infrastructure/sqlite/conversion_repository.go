package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/repository"
)

var _ repository.ConversionRepository = (*ConversionRepo)(nil)

type conversionRecord struct {
	UnitFrom   string          `db:"unit_from"`
	SymbolFrom string          `db:"symbol_from"`
	UnitTo     string          `db:"unit_to"`
	SymbolTo   string          `db:"symbol_to"`
	Factor     decimal.Decimal `db:"factor"`
}

// ConversionRepo implementación de ConversionRepository sobre SQLite.
type ConversionRepo struct {
	db *sqlx.DB
}

// NewConversionRepository construye el adaptador.
func NewConversionRepository(db *sqlx.DB) *ConversionRepo {
	return &ConversionRepo{db: db}
}

// ListConversionEdges devuelve todas las conversiones en orden de carga.
func (r *ConversionRepo) ListConversionEdges(ctx context.Context) ([]entity.ConversionEdge, error) {
	var records []conversionRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT COALESCE(uf.name, '')   AS unit_from,
		       COALESCE(uf.symbol, '') AS symbol_from,
		       COALESCE(ut.name, '')   AS unit_to,
		       COALESCE(ut.symbol, '') AS symbol_to,
		       c.factor                AS factor
		FROM unit_conversions c
		JOIN units uf ON uf.id = c.unit_from_id
		JOIN units ut ON ut.id = c.unit_to_id
		ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	edges := make([]entity.ConversionEdge, 0, len(records))
	for _, rec := range records {
		edges = append(edges, entity.ConversionEdge(rec))
	}
	return edges, nil
}
