package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	// ErrDataAccess falla del almacén externo; nunca debe interpretarse como stock cero.
	ErrDataAccess = errors.New("error de acceso a datos")
)
