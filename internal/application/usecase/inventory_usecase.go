package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
	"github.com/jhoicas/stock-assistant-api/internal/domain/repository"
	"github.com/jhoicas/stock-assistant-api/pkg/logger"
)

// InventoryUseCase consulta y ajusta cantidades por (bodega, producto).
// No crea filas: una actualización sobre un par inexistente falla con domain.ErrOperationFailed.
type InventoryUseCase struct {
	repo repository.InventoryRepository
	log  *logger.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, log *logger.Logger) *InventoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryUseCase{repo: repo, log: log.Component("inventory_usecase")}
}

// Fetch lista el inventario filtrando opcionalmente por bodega y/o producto (igualdad exacta).
func (uc *InventoryUseCase) Fetch(ctx context.Context, page query.PageRequest, warehouseID, productID *string) (*query.Page[entity.InventoryItem], error) {
	res, err := uc.repo.Find(ctx, entity.InventoryFilter{
		Page:        page,
		WarehouseID: warehouseID,
		ProductID:   productID,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Int("page", page.Page).Int("page_size", page.PageSize).
		Int64("total", res.Total).Msg("inventario consultado")
	return res, nil
}

// Update fija la cantidad con una única sentencia condicional y relee la fila.
func (uc *InventoryUseCase) Update(ctx context.Context, warehouseID, productID string, quantity int) (*entity.InventoryItem, error) {
	if quantity < 0 || quantity > entity.MaxQuantity {
		return nil, fmt.Errorf("%w: quantity fuera de rango [0, %d]", domain.ErrInvalidInput, entity.MaxQuantity)
	}
	n, err := uc.repo.UpdateQuantity(ctx, warehouseID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		uc.log.Warn().Str("warehouse_id", warehouseID).Str("product_id", productID).
			Msg("actualización de inventario sin fila")
		return nil, fmt.Errorf("%w: no existe inventario para bodega %s y producto %s",
			domain.ErrOperationFailed, warehouseID, productID)
	}
	item, err := uc.repo.FindByKey(ctx, warehouseID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	uc.log.Info().Str("warehouse_id", warehouseID).Str("product_id", productID).
		Int("quantity", item.Quantity).Msg("inventario actualizado")
	return item, nil
}
