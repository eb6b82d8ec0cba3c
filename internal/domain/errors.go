package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El motor de stock los reporta antes de escribir; nunca se reinterpretan
// como transitorios. Cualquier otro error es falla interna de infraestructura.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrOwnershipMismatch = errors.New("bodega y producto pertenecen a empresas distintas")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
