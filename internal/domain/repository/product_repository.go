package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductFilter filtros opcionales para listar productos (vacío = sin filtro).
type ProductFilter struct {
	Query  string // búsqueda por nombre (LIKE, case-insensitive)
	Brand  string
	Status string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID string, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
