package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	httpiface "github.com/jhoicas/almacen-api/internal/interfaces/http"
)

// Fakes mínimos para probar el mapeo HTTP. La semántica transaccional fina se
// prueba en el paquete stock; aquí solo importan códigos de estado y cuerpos.

type fakeStore struct {
	warehouses map[string]*entity.Warehouse
	products   map[string]*entity.Product
	stocks     map[string]*entity.Stock
	movements  []*entity.Movement
}

func key(warehouseID, productID string) string { return warehouseID + "|" + productID }

// Run ejecuta el callback directamente sobre el estado compartido.
func (s *fakeStore) Run(_ context.Context, fn func(
	repository.StockRepository,
	repository.MovementRepository,
	repository.WarehouseRepository,
	repository.ProductRepository,
) error) error {
	return fn(
		(*fakeStockRepo)(s),
		(*fakeMovementRepo)(s),
		(*fakeWarehouseRepo)(s),
		(*fakeProductRepo)(s),
	)
}

type fakeStockRepo fakeStore

func (r *fakeStockRepo) Get(warehouseID, productID string) (*entity.Stock, error) {
	return r.stocks[key(warehouseID, productID)], nil
}
func (r *fakeStockRepo) GetForUpdate(warehouseID, productID string) (*entity.Stock, error) {
	return r.Get(warehouseID, productID)
}
func (r *fakeStockRepo) CreateIfAbsent(stock *entity.Stock) error {
	k := key(stock.WarehouseID, stock.ProductID)
	if _, ok := r.stocks[k]; ok {
		return nil
	}
	s := *stock
	s.Quantity = 0
	r.stocks[k] = &s
	return nil
}
func (r *fakeStockRepo) Upsert(stock *entity.Stock) error {
	r.stocks[key(stock.WarehouseID, stock.ProductID)] = stock
	return nil
}
func (r *fakeStockRepo) ListByWarehouse(warehouseID string) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for _, s := range r.stocks {
		if s.WarehouseID == warehouseID {
			list = append(list, s)
		}
	}
	return list, nil
}

type fakeMovementRepo fakeStore

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) List(_ repository.MovementFilter, _, _ int) ([]*entity.Movement, error) {
	return r.movements, nil
}

type fakeWarehouseRepo fakeStore

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) ListByCompany(string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *fakeWarehouseRepo) Delete(id string) error { delete(r.warehouses, id); return nil }

type fakeProductRepo fakeStore

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetByCompanyAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) ListByCompany(string, repository.ProductFilter, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type testServer struct {
	app   *fiber.App
	store *fakeStore

	w1, w2, w3 string // w1 y w2 de la misma empresa; w3 de otra
	p1         string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := &fakeStore{
		warehouses: map[string]*entity.Warehouse{},
		products:   map[string]*entity.Product{},
		stocks:     map[string]*entity.Stock{},
	}
	companyA, companyB := uuid.New().String(), uuid.New().String()
	srv := &testServer{
		store: store,
		w1:    uuid.New().String(),
		w2:    uuid.New().String(),
		w3:    uuid.New().String(),
		p1:    uuid.New().String(),
	}
	store.warehouses[srv.w1] = &entity.Warehouse{ID: srv.w1, CompanyID: companyA, Name: "Principal"}
	store.warehouses[srv.w2] = &entity.Warehouse{ID: srv.w2, CompanyID: companyA, Name: "Secundaria"}
	store.warehouses[srv.w3] = &entity.Warehouse{ID: srv.w3, CompanyID: companyB, Name: "Ajena"}
	store.products[srv.p1] = &entity.Product{
		ID: srv.p1, CompanyID: companyA, SKU: "AZU-001", Name: "Azúcar",
		Price: decimal.NewFromInt(4500), Status: entity.ProductStatusActive,
	}

	uc := stock.NewStockUseCase(store, (*fakeStockRepo)(store), (*fakeWarehouseRepo)(store))
	app := fiber.New()
	h := httpiface.NewStockHandler(uc)
	app.Post("/api/stock/in", h.StockIn)
	app.Post("/api/stock/out", h.StockOut)
	app.Post("/api/stock/transfer", h.Transfer)
	app.Get("/api/stock/:warehouseId", h.GetStock)

	srv.app = app
	return srv
}

func (s *testServer) post(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	return resp
}

func (s *testServer) get(t *testing.T, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	resp, err := s.app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestStockHandler_EntradaRetorna201ConStock(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.post(t, "/api/stock/in", fiber.Map{
		"warehouse_id": srv.w1,
		"product_id":   srv.p1,
		"quantity":     10,
		"note":         "compra",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Quantity int64 `json:"quantity"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, int64(10), body.Quantity)
}

func TestStockHandler_BodyInvalidoRetorna400(t *testing.T) {
	srv := newTestServer(t)

	cases := []fiber.Map{
		{"warehouse_id": srv.w1, "product_id": srv.p1, "quantity": 0},  // cantidad no positiva
		{"warehouse_id": srv.w1, "product_id": srv.p1, "quantity": -5}, // negativa
		{"warehouse_id": "no-es-uuid", "product_id": srv.p1, "quantity": 3},
		{"product_id": srv.p1, "quantity": 3}, // sin bodega
	}
	for i, body := range cases {
		resp := srv.post(t, "/api/stock/in", body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "caso %d", i)
	}
	assert.Empty(t, srv.store.movements, "ninguna petición inválida debe registrar movimiento")
}

func TestStockHandler_BodegaInexistenteRetorna404(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.post(t, "/api/stock/in", fiber.Map{
		"warehouse_id": uuid.New().String(),
		"product_id":   srv.p1,
		"quantity":     5,
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestStockHandler_StockInsuficienteRetorna409(t *testing.T) {
	srv := newTestServer(t)
	resp := srv.post(t, "/api/stock/in", fiber.Map{
		"warehouse_id": srv.w1, "product_id": srv.p1, "quantity": 3,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = srv.post(t, "/api/stock/out", fiber.Map{
		"warehouse_id": srv.w1, "product_id": srv.p1, "quantity": 10,
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
}

func TestStockHandler_PropiedadCruzadaRetorna422(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.post(t, "/api/stock/in", fiber.Map{
		"warehouse_id": srv.w3, "product_id": srv.p1, "quantity": 5,
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "OWNERSHIP_MISMATCH", body.Code)
}

func TestStockHandler_TrasladoCompleto(t *testing.T) {
	srv := newTestServer(t)
	resp := srv.post(t, "/api/stock/in", fiber.Map{
		"warehouse_id": srv.w1, "product_id": srv.p1, "quantity": 6,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = srv.post(t, "/api/stock/transfer", fiber.Map{
		"from_warehouse_id": srv.w1,
		"to_warehouse_id":   srv.w2,
		"product_id":        srv.p1,
		"quantity":          6,
		"note":              "reubicación",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	assert.Equal(t, int64(0), srv.store.stocks[key(srv.w1, srv.p1)].Quantity)
	assert.Equal(t, int64(6), srv.store.stocks[key(srv.w2, srv.p1)].Quantity)
}

func TestStockHandler_TrasladoMismaBodegaRetorna400(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.post(t, "/api/stock/transfer", fiber.Map{
		"from_warehouse_id": srv.w1,
		"to_warehouse_id":   srv.w1,
		"product_id":        srv.p1,
		"quantity":          1,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStockHandler_ConsultaDeStock(t *testing.T) {
	srv := newTestServer(t)
	resp := srv.post(t, "/api/stock/in", fiber.Map{
		"warehouse_id": srv.w1, "product_id": srv.p1, "quantity": 12,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = srv.get(t, fmt.Sprintf("/api/stock/%s?product_id=%s", srv.w1, srv.p1))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		WarehouseID string `json:"warehouse_id"`
		Items       []struct {
			Quantity int64 `json:"quantity"`
		} `json:"items"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, srv.w1, body.WarehouseID)
	require.Len(t, body.Items, 1)
	assert.Equal(t, int64(12), body.Items[0].Quantity)

	// Bodega inexistente.
	resp = srv.get(t, "/api/stock/"+uuid.New().String())
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStockHandler_BodegaVaciaRetornaListaVacia(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.get(t, "/api/stock/"+srv.w2)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Items []json.RawMessage `json:"items"`
	}
	decodeBody(t, resp, &body)
	assert.Empty(t, body.Items)
}
