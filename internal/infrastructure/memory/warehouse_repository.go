package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
	"github.com/jhoicas/stock-assistant-api/internal/domain/repository"
	"github.com/jhoicas/stock-assistant-api/internal/domain/specification"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo repositorio de bodegas en memoria.
type WarehouseRepo struct {
	s *Store
}

func warehouseFields(w entity.Warehouse) fieldGetter {
	return func(field string) (any, bool) {
		switch field {
		case specification.FieldID:
			return w.ID, true
		case specification.FieldName:
			return w.Name, true
		case specification.FieldLocation:
			return w.Location, true
		case specification.FieldCapacity:
			return w.Capacity, true
		case specification.FieldCreatedAt:
			return w.CreatedAt, true
		case specification.FieldUpdatedAt:
			return w.UpdatedAt, true
		}
		return nil, false
	}
}

func (r *WarehouseRepo) Find(_ context.Context, f entity.WarehouseFilter) (*query.Page[entity.Warehouse], error) {
	spec, err := specification.Warehouse(f)
	if err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var rows []*warehouseRow
	for _, row := range r.s.warehouses {
		ok, err := matches(spec, warehouseFields(row.w))
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, row)
		}
	}
	sortRows(rows, f.Page.Sort,
		func(row *warehouseRow) fieldGetter { return warehouseFields(row.w) },
		func(row *warehouseRow) int64 { return row.id })

	var items []entity.Warehouse
	for _, row := range paginate(rows, f.Page) {
		items = append(items, row.w)
	}
	return query.NewPage(items, int64(len(rows)), f.Page), nil
}

func (r *WarehouseRepo) FindByID(_ context.Context, id string) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	w := row.w
	return &w, nil
}

func (r *WarehouseRepo) Save(_ context.Context, w *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.tick()
	if w.ID == "" {
		w.ID = uuid.New().String()
		w.CreatedAt = now
		w.UpdatedAt = now
		r.s.warehouses[w.ID] = &warehouseRow{id: r.s.nextID(), w: *w}
		return nil
	}
	row, ok := r.s.warehouses[w.ID]
	if !ok {
		return domain.ErrNotFound
	}
	w.CreatedAt = row.w.CreatedAt
	w.UpdatedAt = now
	row.w = *w
	return nil
}

func (r *WarehouseRepo) DeleteByID(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.warehouses, id)
	for k := range r.s.inventory {
		if k.warehouseID == id {
			delete(r.s.inventory, k)
		}
	}
	return nil
}
