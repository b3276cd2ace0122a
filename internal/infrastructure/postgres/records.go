package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRecord fila de la tabla products. ID es la clave interna (BIGSERIAL),
// distinta del UUID externo. Los enums se guardan por nombre.
type ProductRecord struct {
	ID            int64
	UUID          string
	SKU           string
	Name          string
	Description   string
	Price         decimal.Decimal
	Category      string
	UnitOfMeasure string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WarehouseRecord fila de la tabla warehouses.
type WarehouseRecord struct {
	ID        int64
	UUID      string
	Name      string
	Location  string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InventoryItemRecord fila de inventory. Para escribir basta con ProductUUID/WarehouseUUID;
// Product y Warehouse se completan al leer con JOIN.
type InventoryItemRecord struct {
	ID              int64
	UUID            string
	ProductUUID     string
	WarehouseUUID   string
	Quantity        int
	LastStockUpdate time.Time
	Product         *ProductRecord
	Warehouse       *WarehouseRecord
}
