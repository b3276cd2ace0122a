package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-assistant-api/internal/application/dto"
	"github.com/jhoicas/stock-assistant-api/internal/application/usecase"
	"github.com/jhoicas/stock-assistant-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	InventoryUC *usecase.InventoryUseCase
	Paging      config.PagingConfig
	ServiceName string
	Storage     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName, Storage: deps.Storage})
	})

	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Paging)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Paging)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Inventario: sin alta ni baja, solo consulta y ajuste de cantidad
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Paging)
	inventory.Get("/", inventoryHandler.List)
	inventory.Put("/warehouses/:warehouseId/products/:productId", inventoryHandler.UpdateQuantity)
}
