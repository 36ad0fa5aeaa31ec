package repository

import (
	"context"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
)

// InventoryRepository define el puerto de lectura del inventario por depósito (DIP).
type InventoryRepository interface {
	// ListInventoryRows devuelve las filas cuyo nombre de producto contiene nameFilter
	// (sin distinguir mayúsculas), con cantidad > 0, ordenadas por cantidad descendente.
	ListInventoryRows(ctx context.Context, nameFilter string) ([]entity.InventoryRow, error)
}
