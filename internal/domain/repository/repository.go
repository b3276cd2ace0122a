package repository

import (
	"context"

	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
)

// Repository conjunto de capacidades común a Product y Warehouse, parametrizado por entidad y filtro.
// Los adaptadores no deciden "no encontrado" vs. error de validación: FindByID devuelve (nil, nil)
// cuando el identificador no existe y DeleteByID no falla si no había fila.
type Repository[T any, F any] interface {
	Find(ctx context.Context, filter F) (*query.Page[T], error)
	FindByID(ctx context.Context, id string) (*T, error)
	// Save inserta (ID vacío) o reemplaza la entidad. En el primer guardado asigna ID y timestamps.
	Save(ctx context.Context, e *T) error
	DeleteByID(ctx context.Context, id string) error
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Repository[entity.Product, entity.ProductFilter]
}

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Repository[entity.Warehouse, entity.WarehouseFilter]
}

// InventoryRepository variante acotada a la clave compuesta (warehouseID, productID).
type InventoryRepository interface {
	Find(ctx context.Context, filter entity.InventoryFilter) (*query.Page[entity.InventoryItem], error)
	FindByKey(ctx context.Context, warehouseID, productID string) (*entity.InventoryItem, error)
	// Save crea o sobrescribe la fila del par. Si el producto o la bodega no existen devuelve domain.ErrInvalidInput.
	Save(ctx context.Context, item *entity.InventoryItem) error
	// UpdateQuantity actualización condicional en una sola sentencia; devuelve las filas afectadas.
	UpdateQuantity(ctx context.Context, warehouseID, productID string, quantity int) (int64, error)
}
