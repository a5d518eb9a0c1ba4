// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     int
	LogLevel string
	DevMode  bool
	Version  string // reported by the health endpoint

	// 0 seeds the target price predictor from the clock
	PredictorSeed int64

	WatchlistCapacity      int
	WatchlistTTL           time.Duration
	WatchlistSweepSchedule string // cron spec, e.g. "@every 10m"

	Currency string // ISO 4217 code used by the formatters
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                   getEnvAsInt("GO_PORT", 8001),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		DevMode:                getEnvAsBool("DEV_MODE", false),
		Version:                getEnv("VERSION", "1.0.0"),
		PredictorSeed:          getEnvAsInt64("PREDICTOR_SEED", 0),
		WatchlistCapacity:      getEnvAsInt("WATCHLIST_CAPACITY", 5),
		WatchlistTTL:           getEnvAsDuration("WATCHLIST_TTL", 24*time.Hour),
		WatchlistSweepSchedule: getEnv("WATCHLIST_SWEEP_SCHEDULE", "@every 10m"),
		Currency:               strings.ToUpper(getEnv("DISPLAY_CURRENCY", money.USD)),
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.WatchlistCapacity <= 0 {
		return fmt.Errorf("watchlist capacity must be positive, got %d", c.WatchlistCapacity)
	}
	if c.WatchlistTTL <= 0 {
		return fmt.Errorf("watchlist TTL must be positive, got %s", c.WatchlistTTL)
	}
	if c.WatchlistSweepSchedule == "" {
		return fmt.Errorf("watchlist sweep schedule is required")
	}
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("unknown display currency %q", c.Currency)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
