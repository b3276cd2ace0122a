package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-assistant-api/internal/application/dto"
	"github.com/jhoicas/stock-assistant-api/internal/application/usecase"
	"github.com/jhoicas/stock-assistant-api/pkg/config"
)

// InventoryHandler consulta y ajuste de cantidades.
type InventoryHandler struct {
	uc     *usecase.InventoryUseCase
	paging config.PagingConfig
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase, paging config.PagingConfig) *InventoryHandler {
	return &InventoryHandler{uc: uc, paging: paging}
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Produce      json
// @Param        page         query  int     false  "Página (1-based)"  default(1)
// @Param        pageSize     query  int     false  "Tamaño de página"
// @Param        warehouseId  query  string  false  "UUID de la bodega"
// @Param        productId    query  string  false  "UUID del producto"
// @Success      200  {object}  dto.ListResponse[dto.InventoryItemResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	page, err := pageRequest(c, h.paging)
	if err != nil {
		return writeError(c, err)
	}
	warehouseID, err := optUUID(c, "warehouseId")
	if err != nil {
		return writeError(c, err)
	}
	productID, err := optUUID(c, "productId")
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.Fetch(c.UserContext(), page, warehouseID, productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(res, dto.ToInventoryItemResponse))
}

// UpdateQuantity godoc
// @Summary      Fijar cantidad en inventario
// @Description  Solo actualiza filas existentes; si el par (bodega, producto) no tiene inventario responde 409.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        warehouseId  path  string                     true  "UUID de la bodega"
// @Param        productId    path  string                     true  "UUID del producto"
// @Param        body         body  dto.UpdateQuantityRequest  true  "Nueva cantidad"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/warehouses/{warehouseId}/products/{productId} [put]
func (h *InventoryHandler) UpdateQuantity(c *fiber.Ctx) error {
	warehouseID, ok := pathUUID(c, "warehouseId")
	if !ok {
		return badRequest(c, "INVALID_ID", "warehouseId debe ser un UUID")
	}
	productID, ok := pathUUID(c, "productId")
	if !ok {
		return badRequest(c, "INVALID_ID", "productId debe ser un UUID")
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Quantity == nil {
		return badRequest(c, "VALIDATION", "quantity es requerido")
	}
	item, err := h.uc.Update(c.UserContext(), warehouseID, productID, *in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToInventoryItemResponse(*item))
}
