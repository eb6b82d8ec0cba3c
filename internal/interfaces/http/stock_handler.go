package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP del motor de stock.
type StockHandler struct {
	uc *stock.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetStock godoc
// @Summary      Consultar stock de una bodega
// @Tags         stock
// @Produce      json
// @Param        warehouseId  path   string  true   "ID de la bodega (UUID)"
// @Param        product_id   query  string  false  "Filtrar por producto (UUID)"
// @Success      200  {object}  dto.StockListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{warehouseId} [get]
func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	warehouseID := c.Params("warehouseId")
	productID := c.Query("product_id")

	list, err := h.uc.GetStock(c.Context(), warehouseID, productID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toStockListResponse(warehouseID, list))
}

// StockIn godoc
// @Summary      Entrada de stock
// @Description  Suma cantidad al par bodega+producto y registra un movimiento IN.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "warehouse_id, product_id, quantity, note"
// @Success      201  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/stock/in [post]
func (h *StockHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return badBody(c)
	}
	updated, err := h.uc.StockIn(c.Context(), in.WarehouseID, in.ProductID, in.Quantity, in.Note)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockResponse(updated))
}

// StockOut godoc
// @Summary      Salida de stock
// @Description  Resta cantidad del par bodega+producto y registra un movimiento OUT.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOutRequest  true  "warehouse_id, product_id, quantity, note"
// @Success      201  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/stock/out [post]
func (h *StockHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return badBody(c)
	}
	updated, err := h.uc.StockOut(c.Context(), in.WarehouseID, in.ProductID, in.Quantity, in.Note)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockResponse(updated))
}

// Transfer godoc
// @Summary      Traslado de stock entre bodegas
// @Description  Resta en la bodega origen y suma en la destino en una sola transacción, registrando OUT e IN.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "from_warehouse_id, to_warehouse_id, product_id, quantity, note"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/stock/transfer [post]
func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return badBody(c)
	}
	err := h.uc.Transfer(c.Context(), in.FromWarehouseID, in.ToWarehouseID, in.ProductID, in.Quantity, in.Note)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "traslado registrado"})
}

func toStockResponse(s *entity.Stock) dto.StockResponse {
	return dto.StockResponse{
		ID:          s.ID,
		WarehouseID: s.WarehouseID,
		ProductID:   s.ProductID,
		Quantity:    s.Quantity,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toStockListResponse(warehouseID string, list []*entity.Stock) dto.StockListResponse {
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toStockResponse(s))
	}
	return dto.StockListResponse{WarehouseID: warehouseID, Items: items}
}
