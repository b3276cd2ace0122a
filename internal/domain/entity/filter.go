package entity

import (
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
	"github.com/shopspring/decimal"
)

// ProductFilter criterios opcionales para listar productos. nil = sin restricción.
type ProductFilter struct {
	Page          query.PageRequest
	ID            *string
	SKU           *string
	Name          *string // subcadena, sin distinguir mayúsculas
	Category      *ProductCategory
	UnitOfMeasure *UnitOfMeasure
	Price         *decimal.Decimal
}

// WarehouseFilter criterios opcionales para listar bodegas.
type WarehouseFilter struct {
	Page     query.PageRequest
	ID       *string
	Name     *string
	Location *string
	Capacity *int
}

// InventoryFilter solo admite los dos identificadores (igualdad exacta) y no ordena.
type InventoryFilter struct {
	Page        query.PageRequest
	WarehouseID *string
	ProductID   *string
}
