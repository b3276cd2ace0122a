package dto

import (
	"time"

	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRequest body de POST y PUT /api/products. Todos los campos mutables son obligatorios.
type ProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	UnitOfMeasure string          `json:"unitOfMeasure"`
}

// ToEntity convierte el body en la petición de dominio.
func (r ProductRequest) ToEntity() entity.ProductRequest {
	return entity.ProductRequest{
		SKU:           r.SKU,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Category:      entity.ProductCategory(r.Category),
		UnitOfMeasure: entity.UnitOfMeasure(r.UnitOfMeasure),
	}
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	UnitOfMeasure string          `json:"unitOfMeasure"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToProductResponse mapea la entidad a la respuesta.
func ToProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      string(p.Category),
		UnitOfMeasure: string(p.UnitOfMeasure),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
