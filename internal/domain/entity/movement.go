package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Movement es una entrada inmutable del libro de movimientos: registra un
// cambio de cantidad (IN aumenta, OUT disminuye) sobre un par bodega+producto.
// El libro es append-only; nunca se actualiza ni se borra un movimiento.
// La suma de IN menos la suma de OUT por par siempre iguala Stock.Quantity.
type Movement struct {
	ID          string
	WarehouseID string
	ProductID   string
	Type        string    // IN, OUT
	Quantity    int64     // siempre > 0; el signo lo da Type
	Note        string    // opcional
	CreatedAt   time.Time
}
