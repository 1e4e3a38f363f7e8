package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"go-link-shortener/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SessionCookieName is the cookie carrying the identity provider's session
// token. A bearer Authorization header is accepted as an alternative.
const SessionCookieName = "sb_session"

// userContextKey is the gin context key holding the resolved auth.User.
const userContextKey = "authUser"

// client represents a client with its rate limiter and last seen time
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// AuthMiddleware resolves the request's session token once and stores the
// resulting user in the request context. Handlers read the user via
// CurrentUser; nothing downstream touches cookies or the provider again.
func AuthMiddleware(provider auth.Provider, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authRequired})
			c.Abort()
			return
		}

		user, err := provider.ResolveSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrProviderUnavailable) {
				logger.Warn("Identity provider unavailable", zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "Authentication temporarily unavailable"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": authRequired})
			}
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (auth.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return auth.User{}, false
	}
	user, ok := value.(auth.User)
	return user, ok
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RateLimitMiddleware applies per-IP rate limiting to the given handler function.
// It checks if the request is within the rate limit before calling the next handler.
// If the rate limit is exceeded, it returns a 429 Too Many Requests error.
func (h *LinkHandler) RateLimitMiddleware() gin.HandlerFunc {
	const (
		cleanupInterval   = time.Minute
		clientInactiveFor = 3 * time.Minute
	)

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	// Start a goroutine to periodically clean up inactive clients; it stops
	// with the handler's context.
	go h.cleanupInactiveClients(h.ctx, &mu, clients, cleanupInterval, clientInactiveFor)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		// Create a new rate limiter for this IP if it doesn't exist
		if _, found := clients[ip]; !found {
			clients[ip] = &client{
				limiter: rate.NewLimiter(rate.Every(h.config.RatePeriod), h.config.RateLimit),
			}
		}
		clients[ip].lastSeen = time.Now()

		// Check if this request is allowed by the rate limiter
		if !clients[ip].limiter.Allow() {
			mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}
		mu.Unlock()

		c.Next()
	}
}

// cleanupInactiveClients periodically removes clients that haven't been seen
// recently, until ctx is cancelled.
func (h *LinkHandler) cleanupInactiveClients(ctx context.Context, mu *sync.Mutex, clients map[string]*client, interval, inactiveFor time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mu.Lock()
			for ip, client := range clients {
				if time.Since(client.lastSeen) > inactiveFor {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}
}
