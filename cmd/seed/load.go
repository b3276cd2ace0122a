package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/internal/domain/repository"
)

// Load persiste el catálogo con los puertos de repositorio. Sirve igual para PostgreSQL y memoria.
func Load(ctx context.Context, cat *Catalog,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	inventory repository.InventoryRepository,
) error {
	productIDs := make(map[string]string, len(cat.Products))
	for _, req := range cat.Products {
		p := entity.NewProduct(req)
		if err := products.Save(ctx, p); err != nil {
			return fmt.Errorf("guardar producto %s: %w", req.SKU, err)
		}
		productIDs[p.SKU] = p.ID
	}

	warehouseIDs := make(map[string]string, len(cat.Warehouses))
	for _, req := range cat.Warehouses {
		w := entity.NewWarehouse(req)
		if err := warehouses.Save(ctx, w); err != nil {
			return fmt.Errorf("guardar bodega %s: %w", req.Name, err)
		}
		warehouseIDs[w.Name] = w.ID
	}

	for _, s := range cat.Stock {
		productID, ok := productIDs[s.SKU]
		if !ok {
			return fmt.Errorf("%w: inventario referencia sku %q ausente del catálogo", domain.ErrInvalidInput, s.SKU)
		}
		warehouseID, ok := warehouseIDs[s.Warehouse]
		if !ok {
			return fmt.Errorf("%w: inventario referencia bodega %q ausente del catálogo", domain.ErrInvalidInput, s.Warehouse)
		}
		item := &entity.InventoryItem{
			Product:   entity.Product{ID: productID},
			Warehouse: entity.Warehouse{ID: warehouseID},
			Quantity:  s.Quantity,
		}
		if err := inventory.Save(ctx, item); err != nil {
			return fmt.Errorf("guardar inventario %s/%s: %w", s.Warehouse, s.SKU, err)
		}
	}
	return nil
}
