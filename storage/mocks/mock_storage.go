package mocks

import (
	"context"

	"go-link-shortener/types"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock Storage interface
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Create(ctx context.Context, link types.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockStorage) FindByCode(ctx context.Context, code string) (types.Link, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(types.Link), args.Error(1)
}

func (m *MockStorage) ListByOwner(ctx context.Context, ownerID string) ([]types.Link, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Link), args.Error(1)
}
