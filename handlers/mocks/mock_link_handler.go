package mocks

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockLinkHandler is a mock LinkHandlerInterface
type MockLinkHandler struct {
	mock.Mock
}

func (m *MockLinkHandler) CreateLink(c *gin.Context) {
	m.Called(c)
}

func (m *MockLinkHandler) Redirect(c *gin.Context) {
	m.Called(c)
}

func (m *MockLinkHandler) ListLinks(c *gin.Context) {
	m.Called(c)
}

func (m *MockLinkHandler) Home(c *gin.Context) {
	m.Called(c)
}

func (m *MockLinkHandler) HealthCheck(c *gin.Context) {
	m.Called(c)
}

func (m *MockLinkHandler) RateLimitMiddleware() gin.HandlerFunc {
	args := m.Called()
	return args.Get(0).(gin.HandlerFunc)
}
