package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Home describes the service and its endpoints. Full page rendering belongs
// to the front-end collaborator; this is the machine-readable form.
func (h *LinkHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "link shortener",
		"endpoints": gin.H{
			"create":   "POST / (form field: url, authenticated)",
			"redirect": "GET /{short_code}",
			"links":    "GET /links (authenticated)",
		},
	})
}

// HealthCheck handles the health check endpoint.
// It returns a 200 OK status to indicate that the service is up and running.
func (h *LinkHandler) HealthCheck(c *gin.Context) {
	h.logger.Info("Health check request",
		zap.String("ip", c.ClientIP()),
		zap.String("userAgent", c.Request.UserAgent()))
	c.String(http.StatusOK, "OK")
}

// InfoPage serves the static informational pages (about, contact, terms,
// privacy). Content is owned by the front-end; only the slug is reported.
func InfoPage(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": page})
	}
}
