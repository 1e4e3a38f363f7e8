package handlers

import (
	"context"
	"errors"
	"net/http"

	"go-link-shortener/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	errShortLinkNotFound  = "Short link not found"
	errInvalidRedirectURL = "Invalid redirect URL"
)

// Redirect handles the redirection from a short code to its original URL.
// A missing code answers 404; an unreachable store answers 503, never 404,
// so "gone" and "temporarily unanswerable" stay distinguishable to clients.
func (h *LinkHandler) Redirect(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.RequestTimeout)
	defer cancel()

	code := c.Param("short_code")

	link, err := h.service.Resolve(ctx, code)
	if err != nil {
		h.handleRedirectError(c, err, code)
		return
	}

	// Validate the stored URL to prevent open redirects.
	if err := h.validate.Var(link.OriginalURL, "url"); err != nil {
		h.logger.Warn("Invalid original URL",
			zap.String("shortCode", code),
			zap.String("originalURL", link.OriginalURL))
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidRedirectURL})
		return
	}

	h.logger.Info("Redirecting",
		zap.String("shortCode", code),
		zap.String("originalURL", link.OriginalURL),
		zap.String("ip", c.ClientIP()),
		zap.String("userAgent", c.Request.UserAgent()))
	c.Redirect(http.StatusFound, link.OriginalURL)
}

func (h *LinkHandler) handleRedirectError(c *gin.Context, err error, code string) {
	switch {
	case errors.Is(err, services.ErrLinkNotFound):
		h.logger.Info("Short link not found", zap.String("shortCode", code))
		c.JSON(http.StatusNotFound, gin.H{"error": errShortLinkNotFound})
	case errors.Is(err, services.ErrStoreUnavailable):
		h.logger.Warn("Store unavailable during redirect", zap.String("shortCode", code))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": storeUnavailable})
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("Redirect timed out", zap.String("shortCode", code))
		c.JSON(http.StatusRequestTimeout, gin.H{"error": errorTimeout})
	default:
		h.logger.Error("Error resolving short link", zap.String("shortCode", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving short link"})
	}
}
