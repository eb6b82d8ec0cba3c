package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockUseCase es el motor del libro de inventario: entradas (StockIn),
// salidas (StockOut) y traslados (Transfer) sobre pares bodega+producto,
// más la consulta de existencias (GetStock).
//
// Cada operación mutadora corre dentro de una transacción del TxRunner con
// bloqueo de fila (SELECT FOR UPDATE) sobre el stock afectado, valida
// propiedad (bodega y producto de la misma empresa) y suficiencia, actualiza
// la fila de stock y agrega los movimientos correspondientes. Ante cualquier
// error la transacción se revierte completa: nunca queda estado parcial.
type StockUseCase struct {
	txRunner      TxRunner
	stockRepo     repository.StockRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockUseCase construye el motor. stockRepo y warehouseRepo se usan solo
// en la ruta de lectura (GetStock); las escrituras van por el TxRunner.
func NewStockUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	warehouseRepo repository.WarehouseRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:      txRunner,
		stockRepo:     stockRepo,
		warehouseRepo: warehouseRepo,
	}
}

// GetStock consulta las existencias de una bodega, opcionalmente filtradas por
// producto (productID vacío = todas). Si la bodega no existe devuelve
// domain.ErrNotFound; si existe pero no tiene stock devuelve lista vacía.
// No tiene efectos secundarios.
func (uc *StockUseCase) GetStock(ctx context.Context, warehouseID, productID string) ([]*entity.Stock, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	if productID != "" {
		s, err := uc.stockRepo.Get(warehouseID, productID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			// Sin fila para el par: para lecturas la ausencia es cero, no error.
			return []*entity.Stock{}, nil
		}
		return []*entity.Stock{s}, nil
	}

	list, err := uc.stockRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.Stock{}
	}
	return list, nil
}

// StockIn registra una entrada: suma quantity al stock del par bodega+producto
// (creando la fila en cero si no existe) y agrega un movimiento IN, todo en una
// transacción. Devuelve la fila de stock actualizada.
func (uc *StockUseCase) StockIn(ctx context.Context, warehouseID, productID string, quantity int64, note string) (*entity.Stock, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Stock
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		warehouseRepo repository.WarehouseRepository,
		productRepo repository.ProductRepository,
	) error {
		warehouse, product, err := loadPair(warehouseRepo, productRepo, warehouseID, productID)
		if err != nil {
			return err
		}
		if product.CompanyID != warehouse.CompanyID {
			return domain.ErrOwnershipMismatch
		}

		now := time.Now()
		stock, err := lockOrCreate(stockRepo, warehouseID, productID)
		if err != nil {
			return err
		}
		stock.Quantity += quantity
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}

		mov := &entity.Movement{
			ID:          uuid.New().String(),
			WarehouseID: warehouseID,
			ProductID:   productID,
			Type:        entity.MovementTypeIN,
			Quantity:    quantity,
			Note:        note,
			CreatedAt:   now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		result = stock
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// StockOut registra una salida: resta quantity del stock del par
// bodega+producto y agrega un movimiento OUT, todo en una transacción.
// A diferencia de StockIn, la fila de stock debe existir (domain.ErrNotFound
// si no) y tener cantidad suficiente (domain.ErrInsufficientStock si no).
func (uc *StockUseCase) StockOut(ctx context.Context, warehouseID, productID string, quantity int64, note string) (*entity.Stock, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Stock
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		warehouseRepo repository.WarehouseRepository,
		productRepo repository.ProductRepository,
	) error {
		warehouse, product, err := loadPair(warehouseRepo, productRepo, warehouseID, productID)
		if err != nil {
			return err
		}
		if product.CompanyID != warehouse.CompanyID {
			return domain.ErrOwnershipMismatch
		}

		now := time.Now()
		stock, err := stockRepo.GetForUpdate(warehouseID, productID)
		if err != nil {
			return err
		}
		if stock == nil {
			// Para salidas la ausencia de fila es NotFound, no cero implícito.
			return domain.ErrNotFound
		}
		if stock.Quantity < quantity {
			return domain.ErrInsufficientStock
		}
		stock.Quantity -= quantity
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}

		mov := &entity.Movement{
			ID:          uuid.New().String(),
			WarehouseID: warehouseID,
			ProductID:   productID,
			Type:        entity.MovementTypeOUT,
			Quantity:    quantity,
			Note:        note,
			CreatedAt:   now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		result = stock
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Transfer traslada quantity de una bodega a otra de la misma empresa en una
// sola transacción: resta en origen, suma en destino (creando la fila si no
// existe) y agrega dos movimientos — OUT en origen e IN en destino — con la
// misma marca de tiempo y nota. O se confirman los cuatro efectos o ninguno.
func (uc *StockUseCase) Transfer(ctx context.Context, fromWarehouseID, toWarehouseID, productID string, quantity int64, note string) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if fromWarehouseID == toWarehouseID {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		warehouseRepo repository.WarehouseRepository,
		productRepo repository.ProductRepository,
	) error {
		from, err := warehouseRepo.GetByID(fromWarehouseID)
		if err != nil {
			return err
		}
		to, err := warehouseRepo.GetByID(toWarehouseID)
		if err != nil {
			return err
		}
		if from == nil || to == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if from.CompanyID != to.CompanyID || product.CompanyID != from.CompanyID {
			return domain.ErrOwnershipMismatch
		}

		now := time.Now()

		// Bloquea la fila en bodega origen; debe existir y alcanzar.
		origin, err := stockRepo.GetForUpdate(fromWarehouseID, productID)
		if err != nil {
			return err
		}
		if origin == nil {
			return domain.ErrNotFound
		}
		if origin.Quantity < quantity {
			return domain.ErrInsufficientStock
		}

		dest, err := lockOrCreate(stockRepo, toWarehouseID, productID)
		if err != nil {
			return err
		}

		origin.Quantity -= quantity
		dest.Quantity += quantity
		origin.UpdatedAt = now
		dest.UpdatedAt = now
		if err := stockRepo.Upsert(origin); err != nil {
			return err
		}
		if err := stockRepo.Upsert(dest); err != nil {
			return err
		}

		outMov := &entity.Movement{
			ID:          uuid.New().String(),
			WarehouseID: fromWarehouseID,
			ProductID:   productID,
			Type:        entity.MovementTypeOUT,
			Quantity:    quantity,
			Note:        note,
			CreatedAt:   now,
		}
		if err := movRepo.Create(outMov); err != nil {
			return err
		}
		inMov := &entity.Movement{
			ID:          uuid.New().String(),
			WarehouseID: toWarehouseID,
			ProductID:   productID,
			Type:        entity.MovementTypeIN,
			Quantity:    quantity,
			Note:        note,
			CreatedAt:   now,
		}
		return movRepo.Create(inMov)
	})
}

// lockOrCreate bloquea la fila de stock del par para modificarla, creándola
// en cero si no existe. El FOR UPDATE solo serializa filas ya existentes, así
// que la primera inserción pasa por CreateIfAbsent (idempotente) y se vuelve
// a bloquear: dos primeras entradas concurrentes del mismo par acaban sumando
// sobre la única fila confirmada en vez de pisarse.
func lockOrCreate(stockRepo repository.StockRepository, warehouseID, productID string) (*entity.Stock, error) {
	stock, err := stockRepo.GetForUpdate(warehouseID, productID)
	if err != nil || stock != nil {
		return stock, err
	}
	if err := stockRepo.CreateIfAbsent(&entity.Stock{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		ProductID:   productID,
	}); err != nil {
		return nil, err
	}
	stock, err = stockRepo.GetForUpdate(warehouseID, productID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, fmt.Errorf("fila de stock no visible tras crearla (%s, %s)", warehouseID, productID)
	}
	return stock, nil
}

// loadPair carga bodega y producto, traduciendo ausencia a ErrNotFound.
func loadPair(
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	warehouseID, productID string,
) (*entity.Warehouse, *entity.Product, error) {
	warehouse, err := warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, nil, err
	}
	if warehouse == nil {
		return nil, nil, domain.ErrNotFound
	}
	product, err := productRepo.GetByID(productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	return warehouse, product, nil
}
