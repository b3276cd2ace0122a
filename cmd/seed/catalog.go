package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalogo struct {
	Productos  []producto   `xml:"producto"`
	Bodegas    []bodega     `xml:"bodega"`
	Inventario []existencia `xml:"inventario"`
}

type producto struct {
	SKU         string `xml:"sku,attr"`
	Nombre      string `xml:"nombre,attr"`
	Descripcion string `xml:"descripcion,attr"`
	Precio      string `xml:"precio,attr"`
	Categoria   string `xml:"categoria,attr"`
	Unidad      string `xml:"unidad,attr"`
}

type bodega struct {
	Nombre    string `xml:"nombre,attr"`
	Ubicacion string `xml:"ubicacion,attr"`
	Capacidad int    `xml:"capacidad,attr"`
}

type existencia struct {
	SKU      string `xml:"sku,attr"`
	Bodega   string `xml:"bodega,attr"`
	Cantidad int    `xml:"cantidad,attr"`
}

// Catalog datos de carga ya validados. Las existencias referencian producto por SKU y bodega por nombre.
type Catalog struct {
	Products   []entity.ProductRequest
	Warehouses []entity.WarehouseRequest
	Stock      []Stock
}

// Stock cantidad inicial de un SKU en una bodega.
type Stock struct {
	SKU       string
	Warehouse string
	Quantity  int
}

// ParseCatalog decodifica el XML de carga. Acepta archivos ISO-8859-1 además de UTF-8.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	var c catalogo
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decodificar catálogo: %w", err)
	}

	out := &Catalog{}
	skus := make(map[string]bool)
	for _, p := range c.Productos {
		price, err := decimal.NewFromString(strings.TrimSpace(p.Precio))
		if err != nil {
			return nil, fmt.Errorf("producto %s: precio %q: %w", p.SKU, p.Precio, err)
		}
		req := entity.ProductRequest{
			SKU:           strings.TrimSpace(p.SKU),
			Name:          strings.TrimSpace(p.Nombre),
			Description:   strings.TrimSpace(p.Descripcion),
			Price:         price,
			Category:      entity.ProductCategory(p.Categoria),
			UnitOfMeasure: entity.UnitOfMeasure(p.Unidad),
		}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("producto %s: %w", p.SKU, err)
		}
		if skus[req.SKU] {
			return nil, fmt.Errorf("producto %s: SKU repetido", req.SKU)
		}
		skus[req.SKU] = true
		out.Products = append(out.Products, req)
	}

	names := make(map[string]bool)
	for _, b := range c.Bodegas {
		req := entity.WarehouseRequest{
			Name:     strings.TrimSpace(b.Nombre),
			Location: strings.TrimSpace(b.Ubicacion),
			Capacity: b.Capacidad,
		}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("bodega %s: %w", b.Nombre, err)
		}
		if names[req.Name] {
			return nil, fmt.Errorf("bodega %s: nombre repetido", req.Name)
		}
		names[req.Name] = true
		out.Warehouses = append(out.Warehouses, req)
	}

	for _, e := range c.Inventario {
		if !skus[e.SKU] || !names[e.Bodega] {
			return nil, fmt.Errorf("inventario %s/%s: referencia inexistente", e.Bodega, e.SKU)
		}
		if e.Cantidad < 0 {
			return nil, fmt.Errorf("inventario %s/%s: cantidad negativa", e.Bodega, e.SKU)
		}
		out.Stock = append(out.Stock, Stock{SKU: e.SKU, Warehouse: e.Bodega, Quantity: e.Cantidad})
	}
	return out, nil
}
