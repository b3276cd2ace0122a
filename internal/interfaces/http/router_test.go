package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-assistant-api/internal/application/dto"
	"github.com/jhoicas/stock-assistant-api/internal/application/usecase"
	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/stock-assistant-api/internal/interfaces/http"
	"github.com/jhoicas/stock-assistant-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const alphaJSON = `{"sku":"SKU001","name":"AlphaPhone","price":444.14,"category":"ELECTRONICS","unitOfMeasure":"UNIT"}`

// buildTestApp arma la API completa sobre el almacenamiento en memoria.
func buildTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(store.Products(), nil),
		WarehouseUC: usecase.NewWarehouseUseCase(store.Warehouses(), nil),
		InventoryUC: usecase.NewInventoryUseCase(store.Inventory(), nil),
		Paging:      config.PagingConfig{DefaultPageSize: 2, MaxPageSize: 3},
		ServiceName: "stock-test",
		Storage:     config.DriverMemory,
	})
	return app, store
}

func do(t *testing.T, app *fiber.App, method, url, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CrearDevuelve201YLocation(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := do(t, app, fiber.MethodPost, "/api/products", alphaJSON)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	p := decode[dto.ProductResponse](t, resp)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "/api/products/"+p.ID, resp.Header.Get("Location"))
	assert.Equal(t, "444.14", p.Price.String())

	resp = do(t, app, fiber.MethodGet, "/api/products/"+p.ID, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "AlphaPhone", decode[dto.ProductResponse](t, resp).Name)
}

func TestProducts_SKUDuplicadoDevuelve409(t *testing.T) {
	app, _ := buildTestApp(t)
	require.Equal(t, fiber.StatusCreated, do(t, app, fiber.MethodPost, "/api/products", alphaJSON).StatusCode)

	resp := do(t, app, fiber.MethodPost, "/api/products", alphaJSON)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode[dto.ErrorResponse](t, resp).Code)
}

func TestProducts_PeticionIncompletaDevuelve400(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := do(t, app, fiber.MethodPost, "/api/products", `{"sku":"SKU001","name":"Sin categoría","price":1}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestProducts_PrecioConMasDeDosDecimalesDevuelve400(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := do(t, app, fiber.MethodPost, "/api/products",
		`{"sku":"SKU009","name":"Tornillo","price":0.005,"category":"ELECTRONICS","unitOfMeasure":"UNIT"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	list := do(t, app, fiber.MethodGet, "/api/products?sku=SKU009", "")
	assert.Equal(t, int64(0), decode[dto.ListResponse[dto.ProductResponse]](t, list).Total)
}

func TestProducts_ListarFiltroYPaginacion(t *testing.T) {
	app, _ := buildTestApp(t)
	for _, body := range []string{
		alphaJSON,
		`{"sku":"SKU002","name":"alpha mini","price":10,"category":"ELECTRONICS","unitOfMeasure":"UNIT"}`,
		`{"sku":"SKU003","name":"Taladro","price":99,"category":"HARDWARE","unitOfMeasure":"UNIT"}`,
	} {
		require.Equal(t, fiber.StatusCreated, do(t, app, fiber.MethodPost, "/api/products", body).StatusCode)
	}

	resp := do(t, app, fiber.MethodGet, "/api/products?name=ALPHA&sort=price,desc", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.ListResponse[dto.ProductResponse]](t, resp)
	assert.Equal(t, int64(2), list.Total)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 2, list.PageSize, "tamaño por defecto")
	require.Len(t, list.Data, 2)
	assert.Equal(t, "SKU001", list.Data[0].SKU)

	resp = do(t, app, fiber.MethodGet, "/api/products?page=2&pageSize=50", "")
	list = decode[dto.ListResponse[dto.ProductResponse]](t, resp)
	assert.Equal(t, 3, list.PageSize, "pageSize se limita al máximo")
	assert.Empty(t, list.Data)
	assert.Equal(t, int64(3), list.Total)
}

func TestProducts_FiltrosInvalidosDevuelven400(t *testing.T) {
	app, _ := buildTestApp(t)
	for _, url := range []string{
		"/api/products?page=0",
		"/api/products?page=abc",
		"/api/products?page=9223372036854775807",
		"/api/products?sort=secret",
		"/api/products?sort=name,sideways",
		"/api/products?category=FOOD",
		"/api/products?price=barato",
		"/api/products?id=no-uuid",
	} {
		resp := do(t, app, fiber.MethodGet, url, "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, url)
		assert.Equal(t, "INVALID_FILTER", decode[dto.ErrorResponse](t, resp).Code, url)
	}
}

func TestProducts_UpdateYDelete(t *testing.T) {
	app, _ := buildTestApp(t)
	p := decode[dto.ProductResponse](t, do(t, app, fiber.MethodPost, "/api/products", alphaJSON))

	resp := do(t, app, fiber.MethodPut, "/api/products/"+p.ID,
		`{"sku":"SKU001","name":"AlphaPhone 2","price":500,"category":"ELECTRONICS","unitOfMeasure":"UNIT"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "AlphaPhone 2", decode[dto.ProductResponse](t, resp).Name)

	assert.Equal(t, fiber.StatusNoContent, do(t, app, fiber.MethodDelete, "/api/products/"+p.ID, "").StatusCode)
	assert.Equal(t, fiber.StatusNoContent, do(t, app, fiber.MethodDelete, "/api/products/"+p.ID, "").StatusCode)
	assert.Equal(t, fiber.StatusNotFound, do(t, app, fiber.MethodGet, "/api/products/"+p.ID, "").StatusCode)
}

func TestProducts_UpdateInexistenteDevuelve404(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := do(t, app, fiber.MethodPut, "/api/products/1b4e28ba-2fa1-11d2-883f-0016d3cca427", alphaJSON)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestProducts_IDMalFormado(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := do(t, app, fiber.MethodGet, "/api/products/123", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bodegas
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouses_CrearYFiltrarPorCapacidad(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := do(t, app, fiber.MethodPost, "/api/warehouses", `{"name":"W1","location":"Bogotá","capacity":100}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	w := decode[dto.WarehouseResponse](t, resp)
	assert.Equal(t, "/api/warehouses/"+w.ID, resp.Header.Get("Location"))

	list := decode[dto.ListResponse[dto.WarehouseResponse]](t, do(t, app, fiber.MethodGet, "/api/warehouses?capacity=100", ""))
	assert.Equal(t, int64(1), list.Total)

	list = decode[dto.ListResponse[dto.WarehouseResponse]](t, do(t, app, fiber.MethodGet, "/api/warehouses?capacity=99", ""))
	assert.Zero(t, list.Total)
	assert.NotNil(t, list.Data, "lista vacía, no null")

	assert.Equal(t, fiber.StatusBadRequest, do(t, app, fiber.MethodGet, "/api/warehouses?capacity=mucho", "").StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_ActualizarCantidad(t *testing.T) {
	app, store := buildTestApp(t)
	p := decode[dto.ProductResponse](t, do(t, app, fiber.MethodPost, "/api/products", alphaJSON))
	w := decode[dto.WarehouseResponse](t, do(t, app, fiber.MethodPost, "/api/warehouses", `{"name":"W1","capacity":100}`))
	url := "/api/inventory/warehouses/" + w.ID + "/products/" + p.ID

	resp := do(t, app, fiber.MethodPut, url, `{"quantity":50}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode, "sin fila previa")
	assert.Equal(t, "OPERATION_FAILED", decode[dto.ErrorResponse](t, resp).Code)

	require.NoError(t, store.Inventory().Save(context.Background(), &entity.InventoryItem{
		Product: entity.Product{ID: p.ID}, Warehouse: entity.Warehouse{ID: w.ID},
	}))

	resp = do(t, app, fiber.MethodPut, url, `{"quantity":50}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	item := decode[dto.InventoryItemResponse](t, resp)
	assert.Equal(t, 50, item.Quantity)
	assert.Equal(t, "SKU001", item.Product.SKU)

	list := decode[dto.ListResponse[dto.InventoryItemResponse]](t,
		do(t, app, fiber.MethodGet, "/api/inventory?warehouseId="+w.ID, ""))
	require.Len(t, list.Data, 1)
	assert.Equal(t, 50, list.Data[0].Quantity)
	assert.True(t, list.Data[0].LastStockUpdate.After(w.CreatedAt))
}

func TestInventory_CuerpoInvalido(t *testing.T) {
	app, _ := buildTestApp(t)
	url := "/api/inventory/warehouses/1b4e28ba-2fa1-11d2-883f-0016d3cca427/products/1b4e28ba-2fa1-11d2-883f-0016d3cca428"

	assert.Equal(t, fiber.StatusBadRequest, do(t, app, fiber.MethodPut, url, `{}`).StatusCode)
	assert.Equal(t, fiber.StatusBadRequest, do(t, app, fiber.MethodPut, url, `{"quantity":-1}`).StatusCode)
	assert.Equal(t, fiber.StatusBadRequest, do(t, app, fiber.MethodPut, "/api/inventory/warehouses/x/products/y", `{"quantity":1}`).StatusCode)
}

func TestInventory_OrdenNoAdmitido(t *testing.T) {
	app, _ := buildTestApp(t)
	assert.Equal(t, fiber.StatusBadRequest, do(t, app, fiber.MethodGet, "/api/inventory?sort=quantity", "").StatusCode)
}

func TestHealth(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := do(t, app, fiber.MethodGet, "/health", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	h := decode[dto.HealthResponse](t, resp)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "memory", h.Storage)
}
