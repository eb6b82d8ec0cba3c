package entity

import "time"

// Estados posibles de una empresa.
const (
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// Company representa una empresa dueña de bodegas y productos.
// El inventario nunca cruza empresas: toda operación del motor de stock
// valida que bodega y producto compartan la misma Company.
type Company struct {
	ID        string
	Name      string
	NIT       string    // identificación tributaria (NIT colombiano)
	Address   string
	Phone     string    // opcional
	Status    string    // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
