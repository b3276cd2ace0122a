package memory

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// fieldGetter devuelve el valor del campo lógico de un registro.
type fieldGetter func(field string) (any, bool)

// matches evalúa la conjunción; la Spec vacía coincide siempre.
func matches(spec query.Spec, get fieldGetter) (bool, error) {
	for _, c := range spec.Clauses() {
		v, ok := get(c.Field)
		if !ok {
			return false, fmt.Errorf("%w: campo %q", domain.ErrInvalidFilter, c.Field)
		}
		switch c.Op {
		case query.OpEqual:
			if !equalValues(v, c.Value) {
				return false, nil
			}
		case query.OpContainsFold:
			text, ok1 := v.(string)
			needle, ok2 := c.Value.(string)
			if !ok1 || !ok2 {
				return false, fmt.Errorf("%w: %s requiere texto", domain.ErrInvalidFilter, c.Field)
			}
			if !containsFold(text, needle) {
				return false, nil
			}
		default:
			return false, fmt.Errorf("%w: operador %s", domain.ErrInvalidFilter, c.Op)
		}
	}
	return true, nil
}

func equalValues(a, b any) bool {
	if x, ok := a.(decimal.Decimal); ok {
		y, ok := b.(decimal.Decimal)
		return ok && x.Equal(y)
	}
	return a == b
}

func containsFold(text, needle string) bool {
	return strings.Contains(cases.Fold().String(text), cases.Fold().String(needle))
}

func compareValues(a, b any) int {
	switch x := a.(type) {
	case string:
		return strings.Compare(x, b.(string))
	case int:
		return cmp.Compare(x, b.(int))
	case decimal.Decimal:
		return x.Cmp(b.(decimal.Decimal))
	case time.Time:
		return x.Compare(b.(time.Time))
	}
	return 0
}

// sortRows ordena por el campo solicitado usando la clave interna como desempate;
// sin campo queda el orden de inserción.
func sortRows[T any](rows []T, sort query.Sort, get func(T) fieldGetter, id func(T) int64) {
	slices.SortStableFunc(rows, func(a, b T) int {
		if sort.Field != "" {
			va, _ := get(a)(sort.Field)
			vb, _ := get(b)(sort.Field)
			c := compareValues(va, vb)
			if sort.Direction == query.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(id(a), id(b))
	})
}

// paginate devuelve el tramo [(page-1)*pageSize, page*pageSize) de rows.
func paginate[T any](rows []T, req query.PageRequest) []T {
	start := req.Offset()
	if start >= len(rows) {
		return nil
	}
	return rows[start : start+min(req.Limit(), len(rows)-start)]
}
