package mocks

import (
	"context"

	"go-link-shortener/types"

	"github.com/stretchr/testify/mock"
)

// MockLinkService is a mock LinkService interface
type MockLinkService struct {
	mock.Mock
}

func (m *MockLinkService) CreateLink(ctx context.Context, rawURL, ownerID string) (types.Link, error) {
	args := m.Called(ctx, rawURL, ownerID)
	return args.Get(0).(types.Link), args.Error(1)
}

func (m *MockLinkService) Resolve(ctx context.Context, code string) (types.Link, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(types.Link), args.Error(1)
}

func (m *MockLinkService) ListLinks(ctx context.Context, ownerID string) ([]types.Link, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Link), args.Error(1)
}
