// Package specification traduce los filtros de cada familia de entidades en una query.Spec.
// Funciones libres y sin estado: no hay nada que instanciar.
package specification

// Campos lógicos compartidos por filtros y orden. Los adaptadores los traducen a columnas.
const (
	FieldID            = "uuid"
	FieldSKU           = "sku"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldPrice         = "price"
	FieldCategory      = "category"
	FieldUnitOfMeasure = "unitOfMeasure"
	FieldLocation      = "location"
	FieldCapacity      = "capacity"
	FieldCreatedAt     = "createdAt"
	FieldUpdatedAt     = "updatedAt"

	FieldWarehouseID = "warehouse.uuid"
	FieldProductID   = "product.uuid"
)

// ProductSortable campos por los que se puede ordenar productos.
var ProductSortable = []string{
	FieldID, FieldSKU, FieldName, FieldDescription, FieldPrice,
	FieldCategory, FieldUnitOfMeasure, FieldCreatedAt, FieldUpdatedAt,
}

// WarehouseSortable campos por los que se puede ordenar bodegas.
var WarehouseSortable = []string{
	FieldID, FieldName, FieldLocation, FieldCapacity, FieldCreatedAt, FieldUpdatedAt,
}
