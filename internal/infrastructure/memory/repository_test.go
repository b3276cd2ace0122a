package memory_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
	"github.com/jhoicas/stock-assistant-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(n, size int) query.PageRequest {
	return query.PageRequest{Page: n, PageSize: size}
}

func product(sku, name string, price string, cat entity.ProductCategory) *entity.Product {
	return entity.NewProduct(entity.ProductRequest{
		SKU:           sku,
		Name:          name,
		Price:         decimal.RequireFromString(price),
		Category:      cat,
		UnitOfMeasure: entity.UnitUnit,
	})
}

// frozenClock devuelve siempre el mismo instante: el Store debe seguir generando marcas crecientes.
func frozenClock() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_SaveAsignaIdentidad(t *testing.T) {
	repo := memory.NewStore(memory.WithClock(frozenClock)).Products()
	ctx := context.Background()

	p := product("SKU001", "AlphaPhone", "444.14", entity.CategoryElectronics)
	require.NoError(t, repo.Save(ctx, p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	p.Name = "AlphaPhone 2"
	require.NoError(t, repo.Save(ctx, p))
	assert.True(t, p.UpdatedAt.After(p.CreatedAt), "updatedAt avanza aunque el reloj no")

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "AlphaPhone 2", got.Name)
}

func TestProductRepo_SKUUnico(t *testing.T) {
	repo := memory.NewStore().Products()
	ctx := context.Background()

	a := product("SKU001", "A", "1", entity.CategoryHardware)
	require.NoError(t, repo.Save(ctx, a))
	assert.ErrorIs(t, repo.Save(ctx, product("SKU001", "B", "1", entity.CategoryHardware)), domain.ErrDuplicate)

	// reguardar el mismo producto con su propio SKU no es duplicado
	assert.NoError(t, repo.Save(ctx, a))
}

func TestProductRepo_SaveConIDInexistente(t *testing.T) {
	repo := memory.NewStore().Products()
	p := product("SKU001", "A", "1", entity.CategoryHardware)
	p.ID = "no-existe"
	assert.ErrorIs(t, repo.Save(context.Background(), p), domain.ErrNotFound)
}

func TestProductRepo_FindByIDNoExiste(t *testing.T) {
	got, err := memory.NewStore().Products().FindByID(context.Background(), "nada")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepo_FindNombreSinMayusculas(t *testing.T) {
	repo := memory.NewStore().Products()
	ctx := context.Background()
	alpha := product("SKU001", "AlphaPhone", "444.14", entity.CategoryElectronics)
	require.NoError(t, repo.Save(ctx, alpha))
	require.NoError(t, repo.Save(ctx, product("SKU002", "Taladro", "10", entity.CategoryHardware)))

	name := "alpha"
	res, err := repo.Find(ctx, entity.ProductFilter{Page: page(1, 10), Name: &name})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, alpha.ID, res.Items[0].ID)
	assert.Equal(t, int64(1), res.Total)
}

func TestProductRepo_FiltrosCombinados(t *testing.T) {
	repo := memory.NewStore().Products()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, product("SKU001", "Phone A", "100.00", entity.CategoryElectronics)))
	require.NoError(t, repo.Save(ctx, product("SKU002", "Phone B", "100", entity.CategoryHardware)))
	require.NoError(t, repo.Save(ctx, product("SKU003", "Cable", "100", entity.CategoryElectronics)))

	name := "PHONE"
	cat := entity.CategoryElectronics
	price := decimal.RequireFromString("100")
	res, err := repo.Find(ctx, entity.ProductFilter{Page: page(1, 10), Name: &name, Category: &cat, Price: &price})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "SKU001", res.Items[0].SKU, "100.00 y 100 son el mismo precio")
}

func TestProductRepo_FiltroVacioDevuelveTodo(t *testing.T) {
	repo := memory.NewStore().Products()
	ctx := context.Background()
	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Save(ctx, product(fmt.Sprintf("SKU%03d", i), "P", "1", entity.CategoryHardware)))
	}
	for _, size := range []int{1, 3, 50} {
		res, err := repo.Find(ctx, entity.ProductFilter{Page: page(1, size)})
		require.NoError(t, err)
		assert.Equal(t, int64(7), res.Total, "total independiente del tamaño de página (%d)", size)
	}
}

func TestProductRepo_PaginasContiguas(t *testing.T) {
	repo := memory.NewStore().Products()
	ctx := context.Background()
	prices := []string{"5", "1", "5", "3", "1", "5", "2"}
	for i, p := range prices {
		require.NoError(t, repo.Save(ctx, product(fmt.Sprintf("SKU%03d", i), "P", p, entity.CategoryHardware)))
	}
	sort := query.Sort{Field: "price", Direction: query.Desc}

	all, err := repo.Find(ctx, entity.ProductFilter{Page: query.PageRequest{Page: 1, PageSize: 100, Sort: sort}})
	require.NoError(t, err)

	var joined []entity.Product
	for n := 1; n <= 3; n++ {
		res, err := repo.Find(ctx, entity.ProductFilter{Page: query.PageRequest{Page: n, PageSize: 3, Sort: sort}})
		require.NoError(t, err)
		joined = append(joined, res.Items...)
	}
	assert.Equal(t, all.Items, joined)
	assert.Equal(t, "SKU000", joined[0].SKU, "empate en precio: primero el insertado antes")
	assert.Equal(t, "SKU002", joined[1].SKU)

	beyond, err := repo.Find(ctx, entity.ProductFilter{Page: page(9, 3)})
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, int64(7), beyond.Total)
}

func TestProductRepo_FindPaginaInvalida(t *testing.T) {
	_, err := memory.NewStore().Products().Find(context.Background(), entity.ProductFilter{Page: page(0, 10)})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestWarehouseRepo_FindPaginaFueraDeRango(t *testing.T) {
	s := memory.NewStore()
	seed(t, s)
	ctx := context.Background()

	for _, req := range []query.PageRequest{page(3, math.MaxInt), page(math.MaxInt/50, 100), page(math.MaxInt, 2)} {
		_, err := s.Warehouses().Find(ctx, entity.WarehouseFilter{Page: req})
		assert.ErrorIs(t, err, domain.ErrInvalidFilter, "%+v", req)
	}

	res, err := s.Warehouses().Find(ctx, entity.WarehouseFilter{Page: page(1, math.MaxInt)})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	res, err = s.Warehouses().Find(ctx, entity.WarehouseFilter{Page: page(2, math.MaxInt)})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bodegas e inventario
// ──────────────────────────────────────────────────────────────────────────────

func seed(t *testing.T, s *memory.Store) (*entity.Product, *entity.Warehouse) {
	t.Helper()
	ctx := context.Background()
	p := product("SKU001", "AlphaPhone", "444.14", entity.CategoryElectronics)
	require.NoError(t, s.Products().Save(ctx, p))
	w := entity.NewWarehouse(entity.WarehouseRequest{Name: "W1", Location: "Bogotá", Capacity: 100})
	require.NoError(t, s.Warehouses().Save(ctx, w))
	return p, w
}

func TestWarehouseRepo_FiltroUbicacionYCapacidad(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	seed(t, s)
	require.NoError(t, s.Warehouses().Save(ctx, entity.NewWarehouse(entity.WarehouseRequest{Name: "W2", Location: "Medellín", Capacity: 0})))

	loc := "BOGOTÁ"
	res, err := s.Warehouses().Find(ctx, entity.WarehouseFilter{Page: page(1, 10), Location: &loc})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "W1", res.Items[0].Name)

	zero := 0
	res, err = s.Warehouses().Find(ctx, entity.WarehouseFilter{Page: page(1, 10), Capacity: &zero})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "W2", res.Items[0].Name)
}

func TestInventoryRepo_UpdateQuantitySinFila(t *testing.T) {
	s := memory.NewStore()
	p, w := seed(t, s)

	n, err := s.Inventory().UpdateQuantity(context.Background(), w.ID, p.ID, 50)
	require.NoError(t, err)
	assert.Zero(t, n)

	res, err := s.Inventory().Find(context.Background(), entity.InventoryFilter{Page: page(1, 10)})
	require.NoError(t, err)
	assert.Empty(t, res.Items, "no se crea la fila")
}

func TestInventoryRepo_SaveYUpdate(t *testing.T) {
	s := memory.NewStore(memory.WithClock(frozenClock))
	ctx := context.Background()
	p, w := seed(t, s)

	item := &entity.InventoryItem{Product: entity.Product{ID: p.ID}, Warehouse: entity.Warehouse{ID: w.ID}, Quantity: 5}
	require.NoError(t, s.Inventory().Save(ctx, item))
	assert.Equal(t, "AlphaPhone", item.Product.Name, "Save devuelve referencias resueltas")
	first := item.LastStockUpdate

	n, err := s.Inventory().UpdateQuantity(ctx, w.ID, p.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.Inventory().FindByKey(ctx, w.ID, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 50, got.Quantity)
	assert.True(t, got.LastStockUpdate.After(first))
	assert.True(t, got.LastStockUpdate.After(w.CreatedAt))

	// un segundo Save sobre el par no duplica la fila
	require.NoError(t, s.Inventory().Save(ctx, &entity.InventoryItem{Product: entity.Product{ID: p.ID}, Warehouse: entity.Warehouse{ID: w.ID}, Quantity: 1}))
	res, err := s.Inventory().Find(ctx, entity.InventoryFilter{Page: page(1, 10), WarehouseID: &w.ID})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.Items[0].Quantity)
}

func TestInventoryRepo_SaveReferenciaInexistente(t *testing.T) {
	s := memory.NewStore()
	p, _ := seed(t, s)
	item := &entity.InventoryItem{Product: entity.Product{ID: p.ID}, Warehouse: entity.Warehouse{ID: "otra"}}
	assert.ErrorIs(t, s.Inventory().Save(context.Background(), item), domain.ErrInvalidInput)
}

func TestInventoryRepo_BorradoEnCascada(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	p, w := seed(t, s)
	require.NoError(t, s.Inventory().Save(ctx, &entity.InventoryItem{Product: entity.Product{ID: p.ID}, Warehouse: entity.Warehouse{ID: w.ID}}))

	require.NoError(t, s.Warehouses().DeleteByID(ctx, w.ID))
	require.NoError(t, s.Warehouses().DeleteByID(ctx, w.ID), "idempotente")

	got, err := s.Inventory().FindByKey(ctx, w.ID, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInventoryRepo_FiltroPorProducto(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	p, w := seed(t, s)
	other := product("SKU002", "Otro", "1", entity.CategoryHardware)
	require.NoError(t, s.Products().Save(ctx, other))
	for _, id := range []string{p.ID, other.ID} {
		require.NoError(t, s.Inventory().Save(ctx, &entity.InventoryItem{Product: entity.Product{ID: id}, Warehouse: entity.Warehouse{ID: w.ID}}))
	}

	res, err := s.Inventory().Find(ctx, entity.InventoryFilter{Page: page(1, 10), ProductID: &other.ID})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "SKU002", res.Items[0].Product.SKU)

	all, err := s.Inventory().Find(ctx, entity.InventoryFilter{Page: page(1, 10), WarehouseID: &w.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
	assert.Equal(t, p.ID, all.Items[0].Product.ID, "orden de inserción")
}
