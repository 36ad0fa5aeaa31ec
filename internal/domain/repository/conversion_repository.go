package repository

import (
	"context"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
)

// ConversionRepository define el puerto de lectura de factores de conversión entre unidades.
// Las tablas de conversión son pequeñas: se devuelven completas, sin paginación.
type ConversionRepository interface {
	ListConversionEdges(ctx context.Context) ([]entity.ConversionEdge, error)
}
