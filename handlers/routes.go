package handlers

import (
	"go-link-shortener/auth"
	"go-link-shortener/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes sets up all the routes for the link shortener service.
// Creation and listing require an authenticated session; redirection and
// the informational pages are public.
func RegisterRoutes(r *gin.Engine, handler LinkHandlerInterface, provider auth.Provider, cfg *config.Config, logger *zap.Logger) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	rateLimit := func(c *gin.Context) { c.Next() }
	if !cfg.DisableRateLimit {
		rateLimit = handler.RateLimitMiddleware()
	}
	requireAuth := AuthMiddleware(provider, logger)

	r.GET("/", handler.Home)
	r.POST("/", rateLimit, requireAuth, handler.CreateLink)
	r.GET("/links", rateLimit, requireAuth, handler.ListLinks)
	r.GET("/health", handler.HealthCheck)

	// Informational pages from the original site; content delegated.
	for _, page := range []string{"about", "contact", "terms", "privacy"} {
		r.GET("/"+page, InfoPage(page))
	}

	// Redirection route, user-facing, registered last.
	r.GET("/:short_code", rateLimit, handler.Redirect)
}
