package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
	"github.com/jhoicas/stock-assistant-api/pkg/config"
)

// pageRequest arma la paginación desde page, pageSize y sort. Aplica los valores por defecto
// y el tope de pageSize; page < 1 se deja pasar para que lo rechace el núcleo.
func pageRequest(c *fiber.Ctx, paging config.PagingConfig) (query.PageRequest, error) {
	page, err := intParam(c, "page", 1)
	if err != nil {
		return query.PageRequest{}, err
	}
	size, err := intParam(c, "pageSize", paging.DefaultPageSize)
	if err != nil {
		return query.PageRequest{}, err
	}
	if paging.MaxPageSize > 0 && size > paging.MaxPageSize {
		size = paging.MaxPageSize
	}
	sort, err := query.ParseSort(c.Query("sort"))
	if err != nil {
		return query.PageRequest{}, err
	}
	return query.PageRequest{Page: page, PageSize: size, Sort: sort}, nil
}

func intParam(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s debe ser entero", domain.ErrInvalidFilter, key)
	}
	return n, nil
}

// optString devuelve nil si el parámetro no viene o está vacío.
func optString(c *fiber.Ctx, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}

// optUUID como optString pero exige un UUID válido.
func optUUID(c *fiber.Ctx, key string) (*string, error) {
	v := optString(c, key)
	if v == nil {
		return nil, nil
	}
	if _, err := uuid.Parse(*v); err != nil {
		return nil, fmt.Errorf("%w: %s no es un UUID", domain.ErrInvalidFilter, key)
	}
	return v, nil
}

func optInt(c *fiber.Ctx, key string) (*int, error) {
	if c.Query(key) == "" {
		return nil, nil
	}
	n, err := intParam(c, key, 0)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// pathUUID lee un parámetro de ruta que debe ser UUID.
func pathUUID(c *fiber.Ctx, key string) (string, bool) {
	v := c.Params(key)
	if _, err := uuid.Parse(v); err != nil {
		return "", false
	}
	return v, true
}
