package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la fila de stock de un par bodega+producto; (nil, nil) si no existe.
func (r *StockRepo) Get(warehouseID, productID string) (*entity.Stock, error) {
	query := `
		SELECT id, warehouse_id, product_id, quantity, updated_at
		FROM stock WHERE warehouse_id = $1 AND product_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, warehouseID, productID).Scan(
		&s.ID, &s.WarehouseID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la fila de stock bloqueándola para update (SELECT FOR UPDATE).
// Serializa lecturas-modificaciones concurrentes del mismo par; (nil, nil) si no existe.
func (r *StockRepo) GetForUpdate(warehouseID, productID string) (*entity.Stock, error) {
	query := `
		SELECT id, warehouse_id, product_id, quantity, updated_at
		FROM stock WHERE warehouse_id = $1 AND product_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, warehouseID, productID).Scan(
		&s.ID, &s.WarehouseID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// CreateIfAbsent inserta la fila de stock del par en cero si todavía no existe.
// Si otra transacción ya insertó el par, el ON CONFLICT DO NOTHING la deja
// intacta y la inserción espera a que esa transacción confirme; un GetForUpdate
// posterior encuentra y bloquea la fila ganadora.
func (r *StockRepo) CreateIfAbsent(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (id, warehouse_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, 0, now())
		ON CONFLICT (warehouse_id, product_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.WarehouseID, stock.ProductID,
	)
	if err != nil {
		return fmt.Errorf("create stock if absent: %w", err)
	}
	return nil
}

// Upsert escribe la cantidad de stock (única fila por bodega y producto).
// El llamador debe tener la fila bloqueada con GetForUpdate en la misma
// transacción; de lo contrario dos escrituras concurrentes podrían pisarse.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (id, warehouse_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (warehouse_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.WarehouseID, stock.ProductID, stock.Quantity, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByWarehouse lista las filas de stock de una bodega.
func (r *StockRepo) ListByWarehouse(warehouseID string) ([]*entity.Stock, error) {
	query := `
		SELECT id, warehouse_id, product_id, quantity, updated_at
		FROM stock WHERE warehouse_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.WarehouseID, &s.ProductID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
