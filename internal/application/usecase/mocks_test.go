package usecase_test

import (
	"context"

	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
	"github.com/stretchr/testify/mock"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Find(ctx context.Context, f entity.ProductFilter) (*query.Page[entity.Product], error) {
	args := m.Called(ctx, f)
	page, _ := args.Get(0).(*query.Page[entity.Product])
	return page, args.Error(1)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) Save(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockInventoryRepo struct {
	mock.Mock
}

func (m *mockInventoryRepo) Find(ctx context.Context, f entity.InventoryFilter) (*query.Page[entity.InventoryItem], error) {
	args := m.Called(ctx, f)
	page, _ := args.Get(0).(*query.Page[entity.InventoryItem])
	return page, args.Error(1)
}

func (m *mockInventoryRepo) FindByKey(ctx context.Context, warehouseID, productID string) (*entity.InventoryItem, error) {
	args := m.Called(ctx, warehouseID, productID)
	item, _ := args.Get(0).(*entity.InventoryItem)
	return item, args.Error(1)
}

func (m *mockInventoryRepo) Save(ctx context.Context, item *entity.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockInventoryRepo) UpdateQuantity(ctx context.Context, warehouseID, productID string, quantity int) (int64, error) {
	args := m.Called(ctx, warehouseID, productID, quantity)
	return args.Get(0).(int64), args.Error(1)
}
