package mocks

import (
	"context"

	"go-link-shortener/auth"

	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock Provider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) ResolveSession(ctx context.Context, token string) (auth.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(auth.User), args.Error(1)
}
