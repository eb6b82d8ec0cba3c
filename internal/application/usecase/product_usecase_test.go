package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *memProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) ListByCompany(companyID string, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.CompanyID != companyID {
			continue
		}
		if filter.Brand != "" && p.Brand != filter.Brand {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: map[string]*entity.Company{}}
}

func (r *memCompanyRepo) Create(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *memCompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.NIT == nit {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range r.companies {
		list = append(list, c)
	}
	return list, nil
}

func (r *memCompanyRepo) Delete(id string) error {
	delete(r.companies, id)
	return nil
}

func setupProductUC(t *testing.T) (*usecase.ProductUseCase, string) {
	t.Helper()
	companyRepo := newMemCompanyRepo()
	companyID := uuid.New().String()
	companyRepo.companies[companyID] = &entity.Company{
		ID: companyID, Name: "Distribuidora El Sol", NIT: "900123456-7",
		Status: entity.CompanyStatusActive,
	}
	return usecase.NewProductUseCase(newMemProductRepo(), companyRepo), companyID
}

func TestProductCreate_Exitoso(t *testing.T) {
	uc, companyID := setupProductUC(t)

	resp, err := uc.Create(dto.CreateProductRequest{
		CompanyID: companyID,
		SKU:       "CAF-001",
		Name:      "Café en grano",
		Brand:     "Sierra",
		Price:     decimal.NewFromInt(25000),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "CAF-001", resp.SKU)
	assert.Equal(t, entity.ProductStatusActive, resp.Status, "un producto nuevo nace activo")
	assert.True(t, resp.Price.Equal(decimal.NewFromInt(25000)))
}

func TestProductCreate_SKURepetido_RetornaDuplicate(t *testing.T) {
	uc, companyID := setupProductUC(t)

	_, err := uc.Create(dto.CreateProductRequest{
		CompanyID: companyID, SKU: "CAF-001", Name: "Café en grano", Price: decimal.NewFromInt(25000),
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{
		CompanyID: companyID, SKU: "CAF-001", Name: "Otro café", Price: decimal.NewFromInt(9000),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_PrecioNoPositivo_RetornaInvalid(t *testing.T) {
	uc, companyID := setupProductUC(t)

	for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-100)} {
		_, err := uc.Create(dto.CreateProductRequest{
			CompanyID: companyID, SKU: "CAF-002", Name: "Café molido", Price: price,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestProductCreate_EmpresaInexistente_RetornaNotFound(t *testing.T) {
	uc, _ := setupProductUC(t)

	_, err := uc.Create(dto.CreateProductRequest{
		CompanyID: uuid.New().String(), SKU: "CAF-001", Name: "Café", Price: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_PrecioInvalido_RetornaInvalid(t *testing.T) {
	uc, companyID := setupProductUC(t)
	created, err := uc.Create(dto.CreateProductRequest{
		CompanyID: companyID, SKU: "CAF-001", Name: "Café en grano", Price: decimal.NewFromInt(25000),
	})
	require.NoError(t, err)

	bad := decimal.Zero
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Price: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El producto no debe haber cambiado.
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(25000)))
}

func TestProductUpdate_CambiaCampos(t *testing.T) {
	uc, companyID := setupProductUC(t)
	created, err := uc.Create(dto.CreateProductRequest{
		CompanyID: companyID, SKU: "CAF-001", Name: "Café en grano", Price: decimal.NewFromInt(25000),
	})
	require.NoError(t, err)

	name := "Café en grano premium"
	status := entity.ProductStatusInactive
	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &name, Status: &status})
	require.NoError(t, err)

	assert.Equal(t, name, updated.Name)
	assert.Equal(t, entity.ProductStatusInactive, updated.Status)
	assert.Equal(t, "CAF-001", updated.SKU, "el SKU no cambia en una actualización")
}

func TestProductGetByID_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _ := setupProductUC(t)

	_, err := uc.GetByID(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyCreate_NITRepetido_RetornaDuplicate(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	_, err := uc.Create(dto.CreateCompanyRequest{Name: "Distribuidora El Sol", NIT: "900123456-7"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCompanyRequest{Name: "Otra Empresa", NIT: "900123456-7"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
