package query

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/jhoicas/stock-assistant-api/internal/domain"
)

// Direction dirección de ordenamiento.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Sort campo lógico de orden más dirección. Field vacío = orden de inserción.
type Sort struct {
	Field     string
	Direction Direction
}

// ParseSort interpreta "campo" o "campo,asc|desc". Sin dirección se asume ascendente.
func ParseSort(raw string) (Sort, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Sort{}, nil
	}
	field, dir, hasDir := strings.Cut(raw, ",")
	s := Sort{Field: strings.TrimSpace(field), Direction: Asc}
	if hasDir {
		switch strings.ToUpper(strings.TrimSpace(dir)) {
		case "", "ASC":
		case "DESC":
			s.Direction = Desc
		default:
			return Sort{}, fmt.Errorf("%w: dirección de orden %q", domain.ErrInvalidFilter, dir)
		}
	}
	return s, nil
}

// PageRequest página 1-based, tamaño de página y orden. Ambos números son obligatorios:
// los valores por defecto los aplica el colaborador que construye la petición.
type PageRequest struct {
	Page     int
	PageSize int
	Sort     Sort
}

// Validate verifica página/tamaño y que el campo de orden pertenezca a sortable.
func (p PageRequest) Validate(sortable ...string) error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page debe ser >= 1", domain.ErrInvalidFilter)
	}
	if p.PageSize < 1 {
		return fmt.Errorf("%w: pageSize debe ser > 0", domain.ErrInvalidFilter)
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return fmt.Errorf("%w: page %d fuera de rango para pageSize %d", domain.ErrInvalidFilter, p.Page, p.PageSize)
	}
	if p.Sort.Field != "" && !slices.Contains(sortable, p.Sort.Field) {
		return fmt.Errorf("%w: campo de orden desconocido %q", domain.ErrInvalidFilter, p.Sort.Field)
	}
	switch p.Sort.Direction {
	case "", Asc, Desc:
	default:
		return fmt.Errorf("%w: dirección de orden %q", domain.ErrInvalidFilter, p.Sort.Direction)
	}
	return nil
}

// Offset desplazamiento 0-based: (page - 1) * pageSize. Solo es válido tras Validate.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit tamaño de página.
func (p PageRequest) Limit() int {
	return p.PageSize
}

// Descending indica si el orden solicitado es descendente.
func (p PageRequest) Descending() bool {
	return p.Sort.Direction == Desc
}

// Page resultado paginado. Total cuenta todas las filas que cumplen el predicado.
type Page[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
}

// NewPage construye la página haciendo eco de la petición.
func NewPage[T any](items []T, total int64, req PageRequest) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Total: total, Page: req.Page, PageSize: req.PageSize}
}

// Map transforma los elementos conservando los metadatos de paginación.
func Map[T, R any](p *Page[T], fn func(T) R) *Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return &Page[R]{Items: items, Total: p.Total, Page: p.Page, PageSize: p.PageSize}
}
