package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MovementHandler maneja la consulta del libro de movimientos y el registro
// manual de entradas/salidas. El registro manual delega en el motor de stock:
// mismas validaciones, misma transacción, mismo libro.
type MovementHandler struct {
	uc      *usecase.MovementUseCase
	stockUC *stock.StockUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase, stockUC *stock.StockUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, stockUC: stockUC}
}

// List godoc
// @Summary      Listar movimientos de inventario
// @Tags         movements
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega (UUID)"
// @Param        product_id    query  string  false  "Filtrar por producto (UUID)"
// @Param        limit         query  int     false  "Tamaño de página (por defecto 20)"
// @Param        offset        query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()

	filter := repository.MovementFilter{
		WarehouseID: c.Query("warehouse_id"),
		ProductID:   c.Query("product_id"),
	}
	list, err := h.uc.List(filter, page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// RegisterIn godoc
// @Summary      Registrar entrada manual
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "warehouse_id, product_id, quantity, note"
// @Success      201  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movements/in [post]
func (h *MovementHandler) RegisterIn(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return badBody(c)
	}
	updated, err := h.stockUC.StockIn(c.Context(), in.WarehouseID, in.ProductID, in.Quantity, in.Note)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockResponse(updated))
}

// RegisterOut godoc
// @Summary      Registrar salida manual
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "warehouse_id, product_id, quantity, note"
// @Success      201  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movements/out [post]
func (h *MovementHandler) RegisterOut(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return badBody(c)
	}
	updated, err := h.stockUC.StockOut(c.Context(), in.WarehouseID, in.ProductID, in.Quantity, in.Note)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockResponse(updated))
}
