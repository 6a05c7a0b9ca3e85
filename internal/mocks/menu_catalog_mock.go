// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/combo-pricing-service/internal/domain/model"
)

type MockMenuCatalog struct {
	mock.Mock
}

func (m *MockMenuCatalog) Get(ctx context.Context, id string) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuCatalog) GetMany(ctx context.Context, ids []string) (map[string]model.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.MenuItem), args.Error(1)
}

func (m *MockMenuCatalog) List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuCatalog) Upsert(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuCatalog) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
