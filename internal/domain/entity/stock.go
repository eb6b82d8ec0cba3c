package entity

import "time"

// Stock representa la existencia actual de un producto en una bodega.
// Hay a lo sumo una fila por par (bodega, producto); se crea perezosamente
// en cantidad 0 con la primera entrada y el motor nunca la elimina.
// Quantity jamás es negativa: cada cambio queda respaldado por un Movement
// en la misma transacción.
type Stock struct {
	ID          string
	WarehouseID string
	ProductID   string
	Quantity    int64
	UpdatedAt   time.Time
}
