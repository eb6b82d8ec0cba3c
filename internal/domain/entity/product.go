package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de un producto.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product representa un producto o SKU del catálogo de una empresa.
// SKU es único por empresa; (name, brand) también es único por empresa.
// El stock por bodega vive en Stock, no aquí.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string
	Name        string
	Brand       string          // opcional
	Description string          // opcional
	Price       decimal.Decimal // precio de venta, siempre > 0
	Status      string          // active, inactive (por defecto active)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
