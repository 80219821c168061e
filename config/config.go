// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Reference policies accepted by STORE_REFERENCE_POLICY.
const (
	ReferencePolicyKeep     = "keep"
	ReferencePolicyRestrict = "restrict"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Log       LogConfig
	Metrics   MetricsConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// StoreConfig holds in-memory finance store configuration.
type StoreConfig struct {
	SeedOnStart     bool
	Seed            int64 // 0 picks a time-based seed
	ReferencePolicy string
	TimeZone        string
	PageSize        int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string // json or text
}

// MetricsConfig holds Prometheus exposition configuration.
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// RateLimitConfig holds rate limiting configuration for mutating routes.
type RateLimitConfig struct {
	Enabled     bool
	MaxRequests int
	Window      time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Store: StoreConfig{
			SeedOnStart:     getEnvAsBool("STORE_SEED_ON_START", true),
			Seed:            getEnvAsInt64("STORE_SEED", 0),
			ReferencePolicy: strings.ToLower(getEnv("STORE_REFERENCE_POLICY", ReferencePolicyKeep)),
			TimeZone:        getEnv("STORE_TIMEZONE", "UTC"),
			PageSize:        getEnvAsInt("STORE_PAGE_SIZE", 10),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
		RateLimit: RateLimitConfig{
			Enabled:     getEnvAsBool("RATE_LIMIT_ENABLED", true),
			MaxRequests: getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 60),
			Window:      getEnvAsDuration("RATE_LIMIT_WINDOW", 1*time.Minute),
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Store.ReferencePolicy != ReferencePolicyKeep && c.Store.ReferencePolicy != ReferencePolicyRestrict {
		errs = append(errs, fmt.Errorf("STORE_REFERENCE_POLICY must be %q or %q, got %q",
			ReferencePolicyKeep, ReferencePolicyRestrict, c.Store.ReferencePolicy))
	}
	if _, err := time.LoadLocation(c.Store.TimeZone); err != nil {
		errs = append(errs, fmt.Errorf("STORE_TIMEZONE is invalid: %w", err))
	}
	if c.Store.PageSize < 1 {
		errs = append(errs, fmt.Errorf("STORE_PAGE_SIZE must be positive, got %d", c.Store.PageSize))
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("METRICS_PATH must start with '/', got %q", c.Metrics.Path))
	}
	if c.RateLimit.Enabled && (c.RateLimit.MaxRequests < 1 || c.RateLimit.Window <= 0) {
		errs = append(errs, errors.New("RATE_LIMIT_MAX_REQUESTS and RATE_LIMIT_WINDOW must be positive"))
	}

	return errors.Join(errs...)
}

// Location returns the configured store time zone, falling back to UTC.
func (c StoreConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsTest reports whether the server runs under an automated test environment.
func (c ServerConfig) IsTest() bool {
	return c.Environment == "test" || c.Environment == "e2e"
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
