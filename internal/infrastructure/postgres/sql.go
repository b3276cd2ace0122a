package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
)

// columnMap traduce campos lógicos a columnas calificadas. Actúa también como lista blanca de orden.
type columnMap map[string]string

// sqlArgs acumula argumentos posicionales ($1, $2, ...).
type sqlArgs []any

func (a *sqlArgs) add(v any) string {
	*a = append(*a, v)
	return "$" + strconv.Itoa(len(*a))
}

// renderWhere traduce la conjunción de cláusulas a " WHERE ..." (vacío si la Spec no restringe nada).
func renderWhere(spec query.Spec, cols columnMap, args *sqlArgs) (string, error) {
	clauses := spec.Clauses()
	if len(clauses) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		col, ok := cols[c.Field]
		if !ok {
			return "", fmt.Errorf("%w: campo %q", domain.ErrInvalidFilter, c.Field)
		}
		switch c.Op {
		case query.OpEqual:
			parts = append(parts, col+" = "+args.add(c.Value))
		case query.OpContainsFold:
			text, ok := c.Value.(string)
			if !ok {
				return "", fmt.Errorf("%w: %s requiere texto", domain.ErrInvalidFilter, c.Field)
			}
			parts = append(parts, col+" ILIKE "+args.add("%"+escapeLike(text)+"%"))
		default:
			return "", fmt.Errorf("%w: operador %s", domain.ErrInvalidFilter, c.Op)
		}
	}
	return " WHERE " + strings.Join(parts, " AND "), nil
}

// renderOrderBy resuelve el orden solicitado; sin campo ordena por la clave interna (fallback).
// La clave interna se agrega siempre como desempate para que las páginas sean contiguas.
func renderOrderBy(sort query.Sort, cols columnMap, fallback string) (string, error) {
	if sort.Field == "" {
		return " ORDER BY " + fallback + " ASC", nil
	}
	col, ok := cols[sort.Field]
	if !ok {
		return "", fmt.Errorf("%w: campo de orden desconocido %q", domain.ErrInvalidFilter, sort.Field)
	}
	dir := query.Asc
	if sort.Direction == query.Desc {
		dir = query.Desc
	}
	return fmt.Sprintf(" ORDER BY %s %s, %s ASC", col, dir, fallback), nil
}

// renderPage agrega LIMIT/OFFSET según el contrato 1-based.
func renderPage(p query.PageRequest, args *sqlArgs) string {
	limit := args.add(p.Limit())
	offset := args.add(p.Offset())
	return " LIMIT " + limit + " OFFSET " + offset
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike hace que el texto del usuario se compare literalmente dentro de ILIKE.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
