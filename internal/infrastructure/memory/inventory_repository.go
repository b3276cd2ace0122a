package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
	"github.com/jhoicas/stock-assistant-api/internal/domain/repository"
	"github.com/jhoicas/stock-assistant-api/internal/domain/specification"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo repositorio de inventario en memoria.
type InventoryRepo struct {
	s *Store
}

type resolvedItem struct {
	id   int64
	item entity.InventoryItem
}

func inventoryFields(it entity.InventoryItem) fieldGetter {
	return func(field string) (any, bool) {
		switch field {
		case specification.FieldWarehouseID:
			return it.Warehouse.ID, true
		case specification.FieldProductID:
			return it.Product.ID, true
		}
		return nil, false
	}
}

// resolve arma el item con producto y bodega completos. Requiere s.mu tomado.
func (r *InventoryRepo) resolve(k inventoryKey, row *inventoryRow) (entity.InventoryItem, bool) {
	p, ok1 := r.s.products[k.productID]
	w, ok2 := r.s.warehouses[k.warehouseID]
	if !ok1 || !ok2 {
		return entity.InventoryItem{}, false
	}
	return entity.InventoryItem{
		Product:         p.p,
		Warehouse:       w.w,
		Quantity:        row.quantity,
		LastStockUpdate: row.lastStockUpdate,
	}, true
}

func (r *InventoryRepo) Find(_ context.Context, f entity.InventoryFilter) (*query.Page[entity.InventoryItem], error) {
	spec, err := specification.Inventory(f)
	if err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var rows []resolvedItem
	for k, row := range r.s.inventory {
		item, ok := r.resolve(k, row)
		if !ok {
			continue
		}
		ok, err := matches(spec, inventoryFields(item))
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, resolvedItem{id: row.id, item: item})
		}
	}
	sortRows(rows, query.Sort{},
		func(ri resolvedItem) fieldGetter { return inventoryFields(ri.item) },
		func(ri resolvedItem) int64 { return ri.id })

	var items []entity.InventoryItem
	for _, ri := range paginate(rows, f.Page) {
		items = append(items, ri.item)
	}
	return query.NewPage(items, int64(len(rows)), f.Page), nil
}

func (r *InventoryRepo) FindByKey(_ context.Context, warehouseID, productID string) (*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	k := inventoryKey{productID: productID, warehouseID: warehouseID}
	row, ok := r.s.inventory[k]
	if !ok {
		return nil, nil
	}
	item, ok := r.resolve(k, row)
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// Save crea o sobrescribe la fila del par; solo usa los identificadores de las referencias.
func (r *InventoryRepo) Save(_ context.Context, item *entity.InventoryItem) error {
	if item.Quantity < 0 {
		return fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := inventoryKey{productID: item.Product.ID, warehouseID: item.Warehouse.ID}
	if _, ok := r.s.products[k.productID]; !ok {
		return fmt.Errorf("%w: producto %q inexistente", domain.ErrInvalidInput, k.productID)
	}
	if _, ok := r.s.warehouses[k.warehouseID]; !ok {
		return fmt.Errorf("%w: bodega %q inexistente", domain.ErrInvalidInput, k.warehouseID)
	}
	row, ok := r.s.inventory[k]
	if !ok {
		row = &inventoryRow{id: r.s.nextID()}
		r.s.inventory[k] = row
	}
	row.quantity = item.Quantity
	row.lastStockUpdate = r.s.tick()

	resolved, _ := r.resolve(k, row)
	*item = resolved
	return nil
}

// UpdateQuantity actualiza solo si la fila existe; el mutex hace de atomicidad por sentencia.
func (r *InventoryRepo) UpdateQuantity(_ context.Context, warehouseID, productID string, quantity int) (int64, error) {
	if quantity < 0 {
		return 0, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.inventory[inventoryKey{productID: productID, warehouseID: warehouseID}]
	if !ok {
		return 0, nil
	}
	row.quantity = quantity
	row.lastStockUpdate = r.s.tick()
	return 1, nil
}
