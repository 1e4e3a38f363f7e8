// Package server wires the application together and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-link-shortener/auth"
	"go-link-shortener/config"
	"go-link-shortener/handlers"
	"go-link-shortener/services"
	"go-link-shortener/shortcode"
	"go-link-shortener/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Run builds the storage, services and router from cfg and serves HTTP
// until an interrupt or termination signal arrives.
func Run(logger *zap.Logger, cfg *config.Config) error {
	store, closeStore, err := NewStorage(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.AuthBaseURL == "" {
		return errors.New("auth base URL is required to serve authenticated endpoints")
	}
	provider := auth.NewHTTPProvider(cfg.AuthBaseURL, cfg.AuthAPIKey, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	linkHandler, err := setupLinkHandler(ctx, cfg, store, logger)
	if err != nil {
		return err
	}

	router := setupRouter(linkHandler, provider, cfg, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	go startServer(srv, logger)

	return waitForShutdown(ctx, srv, logger)
}

// NewStorage opens the configured storage backend, wrapping it with the
// Redis read-through cache when a Redis address is configured. The returned
// close function releases the underlying connections.
func NewStorage(cfg *config.Config, logger *zap.Logger) (storage.Storage, func() error, error) {
	store, closeStore, err := storage.Open(cfg.StorageDriver, cfg.DatabaseDSN, cfg.StorageCapacity, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.RedisAddr == "" {
		return store, closeStore, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	cached := storage.NewCachedStorage(store, client, cfg.CacheTTL, logger)
	closeAll := func() error {
		clientErr := client.Close()
		storeErr := closeStore()
		if storeErr != nil {
			return storeErr
		}
		return clientErr
	}
	logger.Info("Redis redirect cache enabled", zap.String("addr", cfg.RedisAddr))
	return cached, closeAll, nil
}

// setupLinkHandler builds the handler on the server-lifetime context; the
// handler's background goroutines stop when that context is cancelled.
func setupLinkHandler(ctx context.Context, cfg *config.Config, store storage.Storage, logger *zap.Logger) (handlers.LinkHandlerInterface, error) {
	linkService := services.NewLinkService(store, shortcode.NewGenerator(), logger)

	handler, err := handlers.NewLinkHandler(ctx, linkService, cfg, logger)
	if err != nil {
		logger.Error("Failed to create link handler", zap.Error(err))
		return nil, err
	}

	logger.Debug("Link handler created successfully")
	return handler, nil
}

func setupRouter(linkHandler handlers.LinkHandlerInterface, provider auth.Provider, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	router := gin.Default()
	handlers.RegisterRoutes(router, linkHandler, provider, cfg, logger)
	return router
}

func startServer(srv *http.Server, logger *zap.Logger) {
	logger.Info("Starting server", zap.String("address", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", zap.Error(err))
	}
	logger.Debug("Server stopped")
}

func waitForShutdown(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Received interrupt signal. Initiating server shutdown...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server gracefully stopped")
	return nil
}
