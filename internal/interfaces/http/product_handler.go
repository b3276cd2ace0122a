package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-assistant-api/internal/application/dto"
	"github.com/jhoicas/stock-assistant-api/internal/application/usecase"
	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/pkg/config"
	"github.com/shopspring/decimal"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	paging config.PagingConfig
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, paging config.PagingConfig) *ProductHandler {
	return &ProductHandler{uc: uc, paging: paging}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        page           query  int     false  "Página (1-based)"  default(1)
// @Param        pageSize       query  int     false  "Tamaño de página"
// @Param        sort           query  string  false  "campo[,asc|desc]"
// @Param        id             query  string  false  "UUID"
// @Param        sku            query  string  false  "SKU exacto"
// @Param        name           query  string  false  "Subcadena del nombre"
// @Param        category       query  string  false  "ELECTRONICS|HARDWARE|CONSUMABLES"
// @Param        unitOfMeasure  query  string  false  "UNIT|KILOGRAM|LITER|METER"
// @Param        price          query  string  false  "Precio exacto"
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return writeError(c, err)
	}
	page, err := h.uc.Fetch(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(page, dto.ToProductResponse))
}

func (h *ProductHandler) filter(c *fiber.Ctx) (entity.ProductFilter, error) {
	var f entity.ProductFilter
	var err error
	if f.Page, err = pageRequest(c, h.paging); err != nil {
		return f, err
	}
	if f.ID, err = optUUID(c, "id"); err != nil {
		return f, err
	}
	f.SKU = optString(c, "sku")
	f.Name = optString(c, "name")
	if v := optString(c, "category"); v != nil {
		cat := entity.ProductCategory(*v)
		if !cat.Valid() {
			return f, fmt.Errorf("%w: category %q", domain.ErrInvalidFilter, *v)
		}
		f.Category = &cat
	}
	if v := optString(c, "unitOfMeasure"); v != nil {
		uom := entity.UnitOfMeasure(*v)
		if !uom.Valid() {
			return f, fmt.Errorf("%w: unitOfMeasure %q", domain.ErrInvalidFilter, *v)
		}
		f.UnitOfMeasure = &uom
	}
	if v := optString(c, "price"); v != nil {
		price, err := decimal.NewFromString(*v)
		if err != nil {
			return f, fmt.Errorf("%w: price %q", domain.ErrInvalidFilter, *v)
		}
		f.Price = &price
	}
	return f, nil
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un UUID")
	}
	p, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToProductResponse(*p))
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	p, err := h.uc.Create(c.UserContext(), in.ToEntity())
	if err != nil {
		return writeError(c, err)
	}
	c.Location("/api/products/" + p.ID)
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductResponse(*p))
}

// Update godoc
// @Summary      Reemplazar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Todos los campos mutables"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un UUID")
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	p, err := h.uc.Update(c.UserContext(), id, in.ToEntity())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToProductResponse(*p))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un UUID")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
