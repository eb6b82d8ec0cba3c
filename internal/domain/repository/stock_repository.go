package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por bodega+producto.
// Get y GetForUpdate devuelven (nil, nil) si la fila no existe: el motor decide
// si eso es ErrNotFound (salidas) o crear la fila en cero (entradas).
type StockRepository interface {
	Get(warehouseID, productID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para lectura-modificación-escritura
	// (SELECT FOR UPDATE). Solo tiene sentido dentro de una transacción.
	GetForUpdate(warehouseID, productID string) (*entity.Stock, error)
	// CreateIfAbsent inserta la fila del par en cero si aún no existe; no
	// falla si otra transacción ya la creó (ON CONFLICT DO NOTHING).
	CreateIfAbsent(stock *entity.Stock) error
	// Upsert escribe la cantidad de la fila. El llamador debe tener la fila
	// bloqueada (GetForUpdate) dentro de la misma transacción.
	Upsert(stock *entity.Stock) error
	ListByWarehouse(warehouseID string) ([]*entity.Stock, error)
}
