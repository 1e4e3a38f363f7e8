// Package config provides configuration settings for the link shortener service.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the application.
type Config struct {
	ServerPort       int
	BaseURL          string // Public base used when building short URLs; request host when empty
	StorageDriver    string // memory | sqlite | postgres
	DatabaseDSN      string
	StorageCapacity  int // memory driver only
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	CacheTTL         time.Duration
	AuthBaseURL      string
	AuthAPIKey       string
	RateLimit        int
	RatePeriod       time.Duration
	RequestTimeout   time.Duration
	DisableRateLimit bool
}

// DefaultConfig returns the default configuration settings.
func DefaultConfig() *Config {
	return &Config{
		ServerPort:       3000,
		StorageDriver:    "memory",
		StorageCapacity:  1000000,
		CacheTTL:         time.Hour,
		RateLimit:        10,
		RatePeriod:       time.Second,
		RequestTimeout:   5 * time.Second,
		DisableRateLimit: false,
	}
}

// Load builds the configuration from environment variables, reading a .env
// file first for development convenience. Keys use the SHORTENER_ prefix,
// e.g. SHORTENER_SERVER_PORT, SHORTENER_DATABASE_DSN.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("shortener")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("server.port", defaults.ServerPort)
	v.SetDefault("base.url", defaults.BaseURL)
	v.SetDefault("storage.driver", defaults.StorageDriver)
	v.SetDefault("storage.capacity", defaults.StorageCapacity)
	v.SetDefault("database.dsn", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.ttl", defaults.CacheTTL)
	v.SetDefault("auth.base.url", "")
	v.SetDefault("auth.api.key", "")
	v.SetDefault("rate.limit", defaults.RateLimit)
	v.SetDefault("rate.period", defaults.RatePeriod)
	v.SetDefault("request.timeout", defaults.RequestTimeout)
	v.SetDefault("disable.rate.limit", defaults.DisableRateLimit)

	cfg := &Config{
		ServerPort:       v.GetInt("server.port"),
		BaseURL:          v.GetString("base.url"),
		StorageDriver:    v.GetString("storage.driver"),
		StorageCapacity:  v.GetInt("storage.capacity"),
		DatabaseDSN:      v.GetString("database.dsn"),
		RedisAddr:        v.GetString("redis.addr"),
		RedisPassword:    v.GetString("redis.password"),
		RedisDB:          v.GetInt("redis.db"),
		CacheTTL:         v.GetDuration("cache.ttl"),
		AuthBaseURL:      v.GetString("auth.base.url"),
		AuthAPIKey:       v.GetString("auth.api.key"),
		RateLimit:        v.GetInt("rate.limit"),
		RatePeriod:       v.GetDuration("rate.period"),
		RequestTimeout:   v.GetDuration("request.timeout"),
		DisableRateLimit: v.GetBool("disable.rate.limit"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are internally consistent.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case "memory":
	case "sqlite", "postgres":
		if c.DatabaseDSN == "" {
			return fmt.Errorf("storage driver %q requires a database DSN", c.StorageDriver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if c.RateLimit <= 0 || c.RatePeriod <= 0 {
		return fmt.Errorf("invalid rate limit configuration")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}
