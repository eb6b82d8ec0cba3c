package dto

import "time"

// RegisterMovementRequest body para POST /api/movements/in y /api/movements/out:
// registro manual de una entrada o salida en el libro de movimientos.
type RegisterMovementRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required,uuid4"`
	ProductID   string `json:"product_id" validate:"required,uuid4"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	Note        string `json:"note,omitempty"`
}

// MovementResponse representación HTTP de un movimiento del libro.
type MovementResponse struct {
	ID          string    `json:"id"`
	WarehouseID string    `json:"warehouse_id"`
	ProductID   string    `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse listado paginado de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
