// Package query define los contratos de consulta compartidos por las tres familias de entidades:
// predicados declarativos (Spec) y paginación/orden (PageRequest, Page).
package query

// Operator operador de comparación de una cláusula.
type Operator int

const (
	// OpEqual igualdad exacta (identificadores, enums, numéricos).
	OpEqual Operator = iota + 1
	// OpContainsFold subcadena sin distinguir mayúsculas/minúsculas (texto libre).
	OpContainsFold
)

func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "eq"
	case OpContainsFold:
		return "contains_fold"
	default:
		return "unknown"
	}
}

// Clause descriptor tipado de una condición: campo lógico, operador y valor.
// El adaptador de almacenamiento traduce el campo lógico a su columna nativa.
type Clause struct {
	Field string
	Op    Operator
	Value any
}

// Eq construye una cláusula de igualdad exacta.
func Eq(field string, value any) Clause {
	return Clause{Field: field, Op: OpEqual, Value: value}
}

// ContainsFold construye una cláusula de subcadena insensible a mayúsculas.
func ContainsFold(field, text string) Clause {
	return Clause{Field: field, Op: OpContainsFold, Value: text}
}

// Spec conjunción (AND) de cláusulas. La Spec vacía equivale a `true`.
// Es inmutable: And devuelve una copia.
type Spec struct {
	clauses []Clause
}

// Where crea una Spec con las cláusulas dadas.
func Where(clauses ...Clause) Spec {
	return Spec{}.And(clauses...)
}

// And agrega cláusulas a la conjunción.
func (s Spec) And(clauses ...Clause) Spec {
	out := make([]Clause, 0, len(s.clauses)+len(clauses))
	out = append(out, s.clauses...)
	out = append(out, clauses...)
	return Spec{clauses: out}
}

// Merge combina varias Specs en una sola conjunción.
func Merge(specs ...Spec) Spec {
	var out Spec
	for _, s := range specs {
		out = out.And(s.clauses...)
	}
	return out
}

// Clauses devuelve una copia de las cláusulas en orden de inserción.
func (s Spec) Clauses() []Clause {
	out := make([]Clause, len(s.clauses))
	copy(out, s.clauses)
	return out
}

// IsEmpty indica si la Spec no restringe ningún campo.
func (s Spec) IsEmpty() bool {
	return len(s.clauses) == 0
}
