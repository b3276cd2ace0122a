package dto

import (
	"time"

	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
)

// WarehouseRequest body de POST y PUT /api/warehouses.
type WarehouseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

func (r WarehouseRequest) ToEntity() entity.WarehouseRequest {
	return entity.WarehouseRequest{Name: r.Name, Location: r.Location, Capacity: r.Capacity}
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToWarehouseResponse(w entity.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Location:  w.Location,
		Capacity:  w.Capacity,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
