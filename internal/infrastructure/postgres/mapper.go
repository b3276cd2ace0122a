package postgres

import (
	"fmt"

	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
)

// Conversión estructural pura entre registros de almacenamiento y entidades de dominio.

// ToProduct convierte la fila en entidad. Un nombre de enum desconocido indica
// deriva del formato almacenado y se reporta como error.
func ToProduct(rec ProductRecord) (entity.Product, error) {
	category := entity.ProductCategory(rec.Category)
	if !category.Valid() {
		return entity.Product{}, fmt.Errorf("categoría almacenada desconocida %q (producto %s)", rec.Category, rec.UUID)
	}
	unit := entity.UnitOfMeasure(rec.UnitOfMeasure)
	if !unit.Valid() {
		return entity.Product{}, fmt.Errorf("unidad almacenada desconocida %q (producto %s)", rec.UnitOfMeasure, rec.UUID)
	}
	return entity.Product{
		ID:            rec.UUID,
		SKU:           rec.SKU,
		Name:          rec.Name,
		Description:   rec.Description,
		Category:      category,
		UnitOfMeasure: unit,
		Price:         rec.Price,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}, nil
}

// FromProduct convierte la entidad en fila. La clave interna no forma parte del dominio.
func FromProduct(p entity.Product) ProductRecord {
	return ProductRecord{
		UUID:          p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      string(p.Category),
		UnitOfMeasure: string(p.UnitOfMeasure),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToWarehouse(rec WarehouseRecord) entity.Warehouse {
	return entity.Warehouse{
		ID:        rec.UUID,
		Name:      rec.Name,
		Location:  rec.Location,
		Capacity:  rec.Capacity,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func FromWarehouse(w entity.Warehouse) WarehouseRecord {
	return WarehouseRecord{
		UUID:      w.ID,
		Name:      w.Name,
		Location:  w.Location,
		Capacity:  w.Capacity,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// ToInventoryItem exige Product y Warehouse resueltos en el registro.
func ToInventoryItem(rec InventoryItemRecord) (entity.InventoryItem, error) {
	if rec.Product == nil || rec.Warehouse == nil {
		return entity.InventoryItem{}, fmt.Errorf("inventario %s sin producto o bodega resueltos", rec.UUID)
	}
	product, err := ToProduct(*rec.Product)
	if err != nil {
		return entity.InventoryItem{}, err
	}
	return entity.InventoryItem{
		Product:         product,
		Warehouse:       ToWarehouse(*rec.Warehouse),
		Quantity:        rec.Quantity,
		LastStockUpdate: rec.LastStockUpdate,
	}, nil
}

// FromInventoryItem solo conserva los identificadores de las referencias.
func FromInventoryItem(item entity.InventoryItem) InventoryItemRecord {
	return InventoryItemRecord{
		ProductUUID:     item.Product.ID,
		WarehouseUUID:   item.Warehouse.ID,
		Quantity:        item.Quantity,
		LastStockUpdate: item.LastStockUpdate,
	}
}
