// Package sqlite implementa los puertos de inventario y conversiones sobre SQLite
// (modernc.org/sqlite, sin cgo) para despliegues de un solo nodo, desarrollo y tests.
package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Open abre la base SQLite en path (":memory:" para una base en memoria) y activa
// las claves foráneas. Se usa una sola conexión: SQLite serializa las escrituras
// y una base en memoria vive solo mientras su conexión siga abierta.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("activar foreign_keys: %w", err)
	}
	return db, nil
}
