package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. ID es el UUID externo;
// CreatedAt/UpdatedAt los asigna el almacenamiento.
type Product struct {
	ID            string
	SKU           string // único en todo el catálogo
	Name          string
	Description   string
	Category      ProductCategory
	UnitOfMeasure UnitOfMeasure
	Price         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductRequest campos mutables de un producto (creación y reemplazo total).
type ProductRequest struct {
	SKU           string
	Name          string
	Description   string
	Price         decimal.Decimal
	Category      ProductCategory
	UnitOfMeasure UnitOfMeasure
}

// Validate exige todos los campos obligatorios; no completa valores por defecto.
func (r ProductRequest) Validate() error {
	if r.SKU == "" || r.Name == "" {
		return fmt.Errorf("%w: sku y name son requeridos", domain.ErrInvalidInput)
	}
	if err := checkPrice(r.Price); err != nil {
		return err
	}
	if err := checkLen("sku", r.SKU, MaxSKULen); err != nil {
		return err
	}
	if err := checkLen("name", r.Name, MaxProductNameLen); err != nil {
		return err
	}
	if err := checkLen("description", r.Description, MaxDescriptionLen); err != nil {
		return err
	}
	if !r.Category.Valid() {
		return fmt.Errorf("%w: category %q", domain.ErrInvalidInput, r.Category)
	}
	if !r.UnitOfMeasure.Valid() {
		return fmt.Errorf("%w: unitOfMeasure %q", domain.ErrInvalidInput, r.UnitOfMeasure)
	}
	return nil
}

// NewProduct construye un producto sin identificador ni timestamps (los asigna Save).
func NewProduct(r ProductRequest) *Product {
	p := &Product{}
	p.Apply(r)
	return p
}

// Apply sobrescribe todos los campos mutables. ID y CreatedAt se conservan.
func (p *Product) Apply(r ProductRequest) {
	p.SKU = r.SKU
	p.Name = r.Name
	p.Description = r.Description
	p.Price = r.Price
	p.Category = r.Category
	p.UnitOfMeasure = r.UnitOfMeasure
}
