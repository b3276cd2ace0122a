package entity

// ProductCategory categoría de producto. Se persiste por nombre, nunca por ordinal.
type ProductCategory string

const (
	CategoryElectronics ProductCategory = "ELECTRONICS"
	CategoryHardware    ProductCategory = "HARDWARE"
	CategoryConsumables ProductCategory = "CONSUMABLES"
)

// ProductCategories lista de categorías válidas.
var ProductCategories = []ProductCategory{CategoryElectronics, CategoryHardware, CategoryConsumables}

// Valid indica si la categoría es un miembro conocido.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryHardware, CategoryConsumables:
		return true
	}
	return false
}

// UnitOfMeasure unidad de medida del producto.
type UnitOfMeasure string

const (
	UnitUnit     UnitOfMeasure = "UNIT"
	UnitKilogram UnitOfMeasure = "KILOGRAM"
	UnitLiter    UnitOfMeasure = "LITER"
	UnitMeter    UnitOfMeasure = "METER"
)

// UnitsOfMeasure lista de unidades válidas.
var UnitsOfMeasure = []UnitOfMeasure{UnitUnit, UnitKilogram, UnitLiter, UnitMeter}

func (u UnitOfMeasure) Valid() bool {
	switch u {
	case UnitUnit, UnitKilogram, UnitLiter, UnitMeter:
		return true
	}
	return false
}
