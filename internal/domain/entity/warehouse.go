package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/stock-assistant-api/internal/domain"
)

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WarehouseRequest campos mutables de una bodega.
type WarehouseRequest struct {
	Name     string
	Location string
	Capacity int
}

func (r WarehouseRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if r.Capacity < 0 || r.Capacity > MaxCapacity {
		return fmt.Errorf("%w: capacity fuera de rango [0, %d]", domain.ErrInvalidInput, MaxCapacity)
	}
	if err := checkLen("name", r.Name, MaxWarehouseLen); err != nil {
		return err
	}
	return checkLen("location", r.Location, MaxLocationLen)
}

// NewWarehouse construye una bodega sin identificador ni timestamps.
func NewWarehouse(r WarehouseRequest) *Warehouse {
	w := &Warehouse{}
	w.Apply(r)
	return w
}

// Apply reemplaza todos los campos mutables.
func (w *Warehouse) Apply(r WarehouseRequest) {
	w.Name = r.Name
	w.Location = r.Location
	w.Capacity = r.Capacity
}
