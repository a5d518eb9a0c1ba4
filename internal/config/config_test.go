package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GO_PORT", "LOG_LEVEL", "DEV_MODE", "PREDICTOR_SEED", "WATCHLIST_CAPACITY",
		"WATCHLIST_TTL", "WATCHLIST_SWEEP_SCHEDULE", "DISPLAY_CURRENCY", "VERSION",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, int64(0), cfg.PredictorSeed)
	assert.Equal(t, 5, cfg.WatchlistCapacity)
	assert.Equal(t, 24*time.Hour, cfg.WatchlistTTL)
	assert.Equal(t, "@every 10m", cfg.WatchlistSweepSchedule)
	assert.Equal(t, "USD", cfg.Currency)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GO_PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("PREDICTOR_SEED", "42")
	t.Setenv("WATCHLIST_CAPACITY", "10")
	t.Setenv("WATCHLIST_TTL", "90m")
	t.Setenv("WATCHLIST_SWEEP_SCHEDULE", "@hourly")
	t.Setenv("DISPLAY_CURRENCY", "eur")
	t.Setenv("VERSION", "2.3.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, "2.3.1", cfg.Version)
	assert.Equal(t, int64(42), cfg.PredictorSeed)
	assert.Equal(t, 10, cfg.WatchlistCapacity)
	assert.Equal(t, 90*time.Minute, cfg.WatchlistTTL)
	assert.Equal(t, "@hourly", cfg.WatchlistSweepSchedule)
	assert.Equal(t, "EUR", cfg.Currency)
}

func TestLoad_UnparseableValuesUseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GO_PORT", "eighty")
	t.Setenv("DEV_MODE", "maybe")
	t.Setenv("WATCHLIST_TTL", "a day")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Port)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, 24*time.Hour, cfg.WatchlistTTL)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "GO_PORT", value: "70000"},
		{name: "negative port", key: "GO_PORT", value: "-1"},
		{name: "zero capacity", key: "WATCHLIST_CAPACITY", value: "0"},
		{name: "negative ttl", key: "WATCHLIST_TTL", value: "-1h"},
		{name: "unknown currency", key: "DISPLAY_CURRENCY", value: "XYZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:                   8001,
		WatchlistCapacity:      5,
		WatchlistTTL:           time.Hour,
		WatchlistSweepSchedule: "@every 10m",
		Currency:               "USD",
	}
	assert.NoError(t, valid.Validate())

	noSchedule := valid
	noSchedule.WatchlistSweepSchedule = ""
	assert.Error(t, noSchedule.Validate())
}
