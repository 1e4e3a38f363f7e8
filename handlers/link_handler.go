// Package handlers provides HTTP request handlers for the link shortener service.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-link-shortener/config"
	"go-link-shortener/services"
	"go-link-shortener/types"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	invalidRequestBody  = "Invalid request body"
	invalidURLProvided  = "Invalid URL provided"
	errorCreatingLink   = "Error creating short link"
	errorListingLinks   = "Error listing links"
	errorTimeout        = "Request timed out"
	storageCapacityFull = "Storage capacity reached"
	serviceBusy         = "Could not create link, try again later"
	storeUnavailable    = "Link store unavailable, try again later"
	authRequired        = "Authentication required"
)

// LinkHandlerInterface defines the methods that a link handler should implement.
type LinkHandlerInterface interface {
	CreateLink(c *gin.Context)
	Redirect(c *gin.Context)
	ListLinks(c *gin.Context)
	Home(c *gin.Context)
	HealthCheck(c *gin.Context)
	RateLimitMiddleware() gin.HandlerFunc
}

// LinkHandler struct holds the dependencies for handling link-related operations.
type LinkHandler struct {
	service  services.LinkService
	validate *validator.Validate
	config   *config.Config
	logger   *zap.Logger
	// ctx bounds background work started by the handler, such as the
	// rate-limiter cleanup goroutine.
	ctx context.Context
}

// NewLinkHandler creates and returns a new LinkHandler instance.
func NewLinkHandler(ctx context.Context, service services.LinkService, cfg *config.Config, logger *zap.Logger) (LinkHandlerInterface, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.RateLimit <= 0 || cfg.RatePeriod <= 0 {
		return nil, errors.New("invalid rate limit configuration")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	handler := &LinkHandler{
		service:  service,
		validate: validator.New(),
		config:   cfg,
		logger:   logger,
		ctx:      ctx,
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return handler, nil
}

// handleError is a helper function to translate service errors into responses.
func (h *LinkHandler) handleError(c *gin.Context, err error, fallback string) {
	var statusCode int
	var errorMessage string

	switch {
	case errors.Is(err, services.ErrInvalidURL):
		statusCode = http.StatusBadRequest
		errorMessage = invalidURLProvided
	case errors.Is(err, services.ErrLinkNotFound):
		statusCode = http.StatusNotFound
		errorMessage = "Short link not found"
	case errors.Is(err, services.ErrTriesExhausted):
		statusCode = http.StatusServiceUnavailable
		errorMessage = serviceBusy
	case errors.Is(err, services.ErrStoreUnavailable):
		statusCode = http.StatusServiceUnavailable
		errorMessage = storeUnavailable
	case errors.Is(err, services.ErrStorageCapacityReached):
		statusCode = http.StatusInsufficientStorage
		errorMessage = storageCapacityFull
	case errors.Is(err, context.DeadlineExceeded):
		statusCode = http.StatusRequestTimeout
		errorMessage = errorTimeout
	default:
		h.logger.Error("Unexpected error", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errorMessage = fallback
	}

	c.JSON(statusCode, gin.H{"error": errorMessage})
}

// CreateLink handles the creation of a new short link for the authenticated
// user. The web form posts a single "url" field; JSON bodies with the same
// shape are accepted as well.
func (h *LinkHandler) CreateLink(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.RequestTimeout)
	defer cancel()

	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": authRequired})
		return
	}

	var input types.CreateLinkRequest
	if err := c.ShouldBind(&input); err != nil {
		h.logger.Warn("Error decoding request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidRequestBody})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		h.logger.Warn("Invalid input", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidURLProvided})
		return
	}

	link, err := h.service.CreateLink(ctx, input.URL, user.ID)
	if err != nil {
		h.handleError(c, err, errorCreatingLink)
		return
	}

	c.JSON(http.StatusCreated, h.linkResponse(c, link))
}

// ListLinks returns the authenticated user's links, newest first.
func (h *LinkHandler) ListLinks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.RequestTimeout)
	defer cancel()

	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": authRequired})
		return
	}

	links, err := h.service.ListLinks(ctx, user.ID)
	if err != nil {
		h.handleError(c, err, errorListingLinks)
		return
	}

	responses := make([]types.LinkResponse, 0, len(links))
	for _, link := range links {
		responses = append(responses, h.linkResponse(c, link))
	}
	c.JSON(http.StatusOK, gin.H{"links": responses})
}

func (h *LinkHandler) linkResponse(c *gin.Context, link types.Link) types.LinkResponse {
	return types.LinkResponse{
		ShortCode:   link.ShortCode,
		ShortURL:    h.shortURLFor(c, link.ShortCode),
		OriginalURL: link.OriginalURL,
		CreatedAt:   link.CreatedAt,
	}
}

// shortURLFor builds the shareable URL for a code, preferring the configured
// public base URL and falling back to the request's own scheme and host.
func (h *LinkHandler) shortURLFor(c *gin.Context, code string) string {
	base := h.config.BaseURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host
	}
	return strings.TrimRight(base, "/") + "/" + code
}
