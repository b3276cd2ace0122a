package dto

import "github.com/jhoicas/stock-assistant-api/internal/domain/query"

// ListResponse envoltorio de listados paginados.
type ListResponse[T any] struct {
	Data     []T   `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// NewListResponse mapea una página de dominio al envoltorio HTTP.
func NewListResponse[E, T any](p *query.Page[E], fn func(E) T) ListResponse[T] {
	m := query.Map(p, fn)
	return ListResponse[T]{Data: m.Items, Total: m.Total, Page: m.Page, PageSize: m.PageSize}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Storage string `json:"storage"`
}
