package dto

import (
	"time"

	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
)

// UpdateQuantityRequest body de PUT /api/inventory/warehouses/:warehouseId/products/:productId.
// Quantity es puntero para distinguir "ausente" de cero.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// InventoryItemResponse fila de inventario con producto y bodega resueltos.
type InventoryItemResponse struct {
	Product         ProductResponse   `json:"product"`
	Warehouse       WarehouseResponse `json:"warehouse"`
	Quantity        int               `json:"quantity"`
	LastStockUpdate time.Time         `json:"lastStockUpdate"`
}

func ToInventoryItemResponse(it entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		Product:         ToProductResponse(it.Product),
		Warehouse:       ToWarehouseResponse(it.Warehouse),
		Quantity:        it.Quantity,
		LastStockUpdate: it.LastStockUpdate,
	}
}
