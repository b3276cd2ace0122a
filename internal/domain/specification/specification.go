package specification

import (
	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
)

// Product valida la paginación y arma una cláusula por cada campo presente del filtro.
func Product(f entity.ProductFilter) (query.Spec, error) {
	if err := f.Page.Validate(ProductSortable...); err != nil {
		return query.Spec{}, err
	}
	var s query.Spec
	if f.ID != nil {
		s = s.And(query.Eq(FieldID, *f.ID))
	}
	if f.SKU != nil {
		s = s.And(query.Eq(FieldSKU, *f.SKU))
	}
	if f.Name != nil {
		s = s.And(query.ContainsFold(FieldName, *f.Name))
	}
	if f.Category != nil {
		s = s.And(query.Eq(FieldCategory, string(*f.Category)))
	}
	if f.UnitOfMeasure != nil {
		s = s.And(query.Eq(FieldUnitOfMeasure, string(*f.UnitOfMeasure)))
	}
	if f.Price != nil {
		s = s.And(query.Eq(FieldPrice, *f.Price))
	}
	return s, nil
}

// Warehouse análogo a Product para bodegas.
func Warehouse(f entity.WarehouseFilter) (query.Spec, error) {
	if err := f.Page.Validate(WarehouseSortable...); err != nil {
		return query.Spec{}, err
	}
	var s query.Spec
	if f.ID != nil {
		s = s.And(query.Eq(FieldID, *f.ID))
	}
	if f.Name != nil {
		s = s.And(query.ContainsFold(FieldName, *f.Name))
	}
	if f.Location != nil {
		s = s.And(query.ContainsFold(FieldLocation, *f.Location))
	}
	if f.Capacity != nil {
		s = s.And(query.Eq(FieldCapacity, *f.Capacity))
	}
	return s, nil
}

// Inventory solo filtra por identificadores (igualdad exacta). No admite campo de orden.
func Inventory(f entity.InventoryFilter) (query.Spec, error) {
	if err := f.Page.Validate(); err != nil {
		return query.Spec{}, err
	}
	var s query.Spec
	if f.WarehouseID != nil {
		s = s.And(query.Eq(FieldWarehouseID, *f.WarehouseID))
	}
	if f.ProductID != nil {
		s = s.And(query.Eq(FieldProductID, *f.ProductID))
	}
	return s, nil
}
