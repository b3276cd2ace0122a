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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct {
	s *Store
}

func productFields(p entity.Product) fieldGetter {
	return func(field string) (any, bool) {
		switch field {
		case specification.FieldID:
			return p.ID, true
		case specification.FieldSKU:
			return p.SKU, true
		case specification.FieldName:
			return p.Name, true
		case specification.FieldDescription:
			return p.Description, true
		case specification.FieldPrice:
			return p.Price, true
		case specification.FieldCategory:
			return string(p.Category), true
		case specification.FieldUnitOfMeasure:
			return string(p.UnitOfMeasure), true
		case specification.FieldCreatedAt:
			return p.CreatedAt, true
		case specification.FieldUpdatedAt:
			return p.UpdatedAt, true
		}
		return nil, false
	}
}

func (r *ProductRepo) Find(_ context.Context, f entity.ProductFilter) (*query.Page[entity.Product], error) {
	spec, err := specification.Product(f)
	if err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var rows []*productRow
	for _, row := range r.s.products {
		ok, err := matches(spec, productFields(row.p))
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, row)
		}
	}
	sortRows(rows, f.Page.Sort,
		func(row *productRow) fieldGetter { return productFields(row.p) },
		func(row *productRow) int64 { return row.id })

	var items []entity.Product
	for _, row := range paginate(rows, f.Page) {
		items = append(items, row.p)
	}
	return query.NewPage(items, int64(len(rows)), f.Page), nil
}

func (r *ProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	p := row.p
	return &p, nil
}

// Save aplica la unicidad de SKU igual que la restricción de la tabla.
func (r *ProductRepo) Save(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, row := range r.s.products {
		if row.p.SKU == p.SKU && id != p.ID {
			return domain.ErrDuplicate
		}
	}
	now := r.s.tick()
	if p.ID == "" {
		p.ID = uuid.New().String()
		p.CreatedAt = now
		p.UpdatedAt = now
		r.s.products[p.ID] = &productRow{id: r.s.nextID(), p: *p}
		return nil
	}
	row, ok := r.s.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CreatedAt = row.p.CreatedAt
	p.UpdatedAt = now
	row.p = *p
	return nil
}

// DeleteByID es idempotente y elimina en cascada el inventario del producto.
func (r *ProductRepo) DeleteByID(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	for k := range r.s.inventory {
		if k.productID == id {
			delete(r.s.inventory, k)
		}
	}
	return nil
}
