package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MovementFilter filtros opcionales para listar movimientos (vacío = sin filtro).
type MovementFilter struct {
	WarehouseID string
	ProductID   string
}

// MovementRepository define el puerto de persistencia del libro de movimientos.
// Solo inserción y lectura: los movimientos son inmutables.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List(filter MovementFilter, limit, offset int) ([]*entity.Movement, error)
}
