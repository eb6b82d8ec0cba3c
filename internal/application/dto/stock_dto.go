package dto

import "time"

// StockInRequest body para POST /api/stock/in (entrada de stock).
type StockInRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required,uuid4"`
	ProductID   string `json:"product_id" validate:"required,uuid4"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	Note        string `json:"note,omitempty"`
}

// StockOutRequest body para POST /api/stock/out (salida de stock).
type StockOutRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required,uuid4"`
	ProductID   string `json:"product_id" validate:"required,uuid4"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	Note        string `json:"note,omitempty"`
}

// TransferRequest body para POST /api/stock/transfer (traslado entre bodegas).
type TransferRequest struct {
	FromWarehouseID string `json:"from_warehouse_id" validate:"required,uuid4"`
	ToWarehouseID   string `json:"to_warehouse_id" validate:"required,uuid4"`
	ProductID       string `json:"product_id" validate:"required,uuid4"`
	Quantity        int64  `json:"quantity" validate:"required,gt=0"`
	Note            string `json:"note,omitempty"`
}

// StockResponse una fila de stock (existencia por bodega y producto).
type StockResponse struct {
	ID          string    `json:"id"`
	WarehouseID string    `json:"warehouse_id"`
	ProductID   string    `json:"product_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StockListResponse resultado de consultar el stock de una bodega.
type StockListResponse struct {
	WarehouseID string          `json:"warehouse_id"`
	Items       []StockResponse `json:"items"`
}
