package entity

import "time"

// InventoryItem stock de un producto en una bodega. Clave lógica: (Product.ID, Warehouse.ID),
// a lo sumo una fila por par. Al leer se resuelven Product y Warehouse completos;
// al escribir solo se usan sus identificadores.
type InventoryItem struct {
	Product         Product
	Warehouse       Warehouse
	Quantity        int
	LastStockUpdate time.Time
}
