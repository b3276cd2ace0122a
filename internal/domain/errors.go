package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound el identificador no existe en el almacenamiento (Product, Warehouse).
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrOperationFailed la actualización condicional no afectó ninguna fila.
	ErrOperationFailed = errors.New("la operación no afectó ningún registro")
	// ErrInvalidFilter filtro o paginación inválidos (campo de orden desconocido, página < 1...).
	ErrInvalidFilter = errors.New("filtro inválido")
	ErrInvalidInput  = errors.New("entrada inválida")
	// ErrDuplicate violación de restricción única (ej. SKU repetido).
	ErrDuplicate = errors.New("recurso duplicado")
)
