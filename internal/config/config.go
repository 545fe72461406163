// Package config provides application configuration management.
// Settings come from environment variables with sensible defaults; a
// local .env file is honored when present.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string // CORS origins for the chat API

	// Data Configuration
	DataDir         string // directory holding the JSON datasets and static frontend
	CatalogFile     string // course catalog file name inside DataDir
	OfficeHoursFile string // professor directory file name inside DataDir
	StaticDir       string // directory served at / (index.html and assets)

	// Session Configuration
	SessionIdleTTL time.Duration // idle time before a conversation context is evicted

	// Rate Limiting (token bucket, per client IP)
	RateLimitBurst        float64
	RateLimitRefillPerSec float64

	// Metrics Authentication
	MetricsUsername string // Basic Auth user for /metrics (default "prometheus")
	MetricsPassword string // empty disables auth

	// Observability
	SentryToken       string // Better Stack Errors token (empty disables)
	SentryHost        string
	SentryEnvironment string
	BetterStackToken  string // log shipping token (empty keeps logs on stdout only)
}

// Load reads configuration from environment variables.
// A .env file is loaded first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		AllowedOrigins:  getListEnv("ALLOWED_ORIGINS", defaultOrigins),

		DataDir:         getEnv("DATA_DIR", "./data"),
		CatalogFile:     getEnv("CATALOG_FILE", "full_subjects_study_plan.json"),
		OfficeHoursFile: getEnv("OFFICE_HOURS_FILE", "office_hours.json"),
		StaticDir:       getEnv("STATIC_DIR", "./static"),

		SessionIdleTTL: getDurationEnv("SESSION_IDLE_TTL", 30*time.Minute),

		RateLimitBurst:        getFloatEnv("RATE_LIMIT_BURST", 10),
		RateLimitRefillPerSec: getFloatEnv("RATE_LIMIT_REFILL_PER_SEC", 1),

		MetricsUsername: getEnv("METRICS_USERNAME", "prometheus"),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),

		SentryToken:       getEnv("SENTRY_TOKEN", ""),
		SentryHost:        getEnv("SENTRY_HOST", "errors.betterstack.com"),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", "production"),
		BetterStackToken:  getEnv("BETTERSTACK_TOKEN", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// defaultOrigins matches the local Vite dev server plus the hosted
// frontend.
var defaultOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"https://omarmubaidin.pythonanywhere.com",
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("DATA_DIR is required"))
	}
	if c.CatalogFile == "" {
		errs = append(errs, errors.New("CATALOG_FILE is required"))
	}
	if c.OfficeHoursFile == "" {
		errs = append(errs, errors.New("OFFICE_HOURS_FILE is required"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", c.ShutdownTimeout))
	}
	if c.SessionIdleTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_IDLE_TTL must be positive, got %v", c.SessionIdleTTL))
	}
	if c.RateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST must be positive, got %v", c.RateLimitBurst))
	}
	if c.RateLimitRefillPerSec <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_REFILL_PER_SEC must be positive, got %v", c.RateLimitRefillPerSec))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// CatalogPath returns the full path to the course catalog file.
func (c *Config) CatalogPath() string {
	return filepath.Join(c.DataDir, c.CatalogFile)
}

// OfficeHoursPath returns the full path to the professor directory file.
func (c *Config) OfficeHoursPath() string {
	return filepath.Join(c.DataDir, c.OfficeHoursFile)
}

// getEnv retrieves an environment variable with a fallback default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv retrieves a duration environment variable with a
// fallback default. Malformed values fall back silently.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves a float64 environment variable with a fallback
// default.
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getListEnv retrieves a comma-separated environment variable with a
// fallback default. Empty items are dropped.
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
