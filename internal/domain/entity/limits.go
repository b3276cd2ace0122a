package entity

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Límites de las columnas de almacenamiento. Ambos adaptadores aceptan exactamente lo mismo.
const (
	MaxSKULen         = 20
	MaxProductNameLen = 100
	MaxDescriptionLen = 500
	MaxWarehouseLen   = 100
	MaxLocationLen    = 255
	PriceScale        = 2
	MaxCapacity       = math.MaxInt32
	MaxQuantity       = math.MaxInt32
)

// MaxPrice cota superior exclusiva de NUMERIC(12,2).
var MaxPrice = decimal.New(1, 10)

func checkLen(field, value string, limit int) error {
	if n := utf8.RuneCountInString(value); n > limit {
		return fmt.Errorf("%w: %s admite hasta %d caracteres (tiene %d)", domain.ErrInvalidInput, field, limit, n)
	}
	return nil
}

func checkPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if !price.Equal(price.Truncate(PriceScale)) {
		return fmt.Errorf("%w: price admite hasta %d decimales", domain.ErrInvalidInput, PriceScale)
	}
	if price.GreaterThanOrEqual(MaxPrice) {
		return fmt.Errorf("%w: price debe ser menor que %s", domain.ErrInvalidInput, MaxPrice)
	}
	return nil
}
