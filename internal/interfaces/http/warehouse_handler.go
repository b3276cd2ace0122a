package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-assistant-api/internal/application/dto"
	"github.com/jhoicas/stock-assistant-api/internal/application/usecase"
	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/pkg/config"
)

// WarehouseHandler maneja las peticiones HTTP para Warehouse.
type WarehouseHandler struct {
	uc     *usecase.WarehouseUseCase
	paging config.PagingConfig
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase, paging config.PagingConfig) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, paging: paging}
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Produce      json
// @Param        page      query  int     false  "Página (1-based)"  default(1)
// @Param        pageSize  query  int     false  "Tamaño de página"
// @Param        sort      query  string  false  "campo[,asc|desc]"
// @Param        id        query  string  false  "UUID"
// @Param        name      query  string  false  "Subcadena del nombre"
// @Param        location  query  string  false  "Subcadena de la ubicación"
// @Param        capacity  query  int     false  "Capacidad exacta"
// @Success      200  {object}  dto.ListResponse[dto.WarehouseResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	var f entity.WarehouseFilter
	var err error
	if f.Page, err = pageRequest(c, h.paging); err != nil {
		return writeError(c, err)
	}
	if f.ID, err = optUUID(c, "id"); err != nil {
		return writeError(c, err)
	}
	if f.Capacity, err = optInt(c, "capacity"); err != nil {
		return writeError(c, err)
	}
	f.Name = optString(c, "name")
	f.Location = optString(c, "location")

	page, err := h.uc.Fetch(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(page, dto.ToWarehouseResponse))
}

// GetByID godoc
// @Summary      Obtener bodega por ID
// @Tags         warehouses
// @Produce      json
// @Param        id   path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un UUID")
	}
	w, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToWarehouseResponse(*w))
}

// Create godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	w, err := h.uc.Create(c.UserContext(), in.ToEntity())
	if err != nil {
		return writeError(c, err)
	}
	c.Location("/api/warehouses/" + w.ID)
	return c.Status(fiber.StatusCreated).JSON(dto.ToWarehouseResponse(*w))
}

// Update godoc
// @Summary      Reemplazar bodega
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la bodega"
// @Param        body  body  dto.WarehouseRequest  true  "Todos los campos mutables"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un UUID")
	}
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	w, err := h.uc.Update(c.UserContext(), id, in.ToEntity())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToWarehouseResponse(*w))
}

// Delete godoc
// @Summary      Eliminar bodega (y su inventario)
// @Tags         warehouses
// @Param        id   path  string  true  "ID de la bodega"
// @Success      204
// @Router       /api/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un UUID")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
