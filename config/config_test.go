package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.True(t, cfg.Store.SeedOnStart)
	assert.Equal(t, ReferencePolicyKeep, cfg.Store.ReferencePolicy)
	assert.Equal(t, 10, cfg.Store.PageSize)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_SEED_ON_START", "false")
	t.Setenv("STORE_SEED", "42")
	t.Setenv("STORE_REFERENCE_POLICY", "RESTRICT")
	t.Setenv("STORE_PAGE_SIZE", "25")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.Store.SeedOnStart)
	assert.Equal(t, int64(42), cfg.Store.Seed)
	assert.Equal(t, ReferencePolicyRestrict, cfg.Store.ReferencePolicy)
	assert.Equal(t, 25, cfg.Store.PageSize)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	require.NoError(t, cfg.Validate())
}

func TestLoad_InvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("STORE_SEED_ON_START", "maybe")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Store.SeedOnStart)
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Load()
	cfg.Server.Port = 0
	cfg.Store.ReferencePolicy = "cascade"
	cfg.Store.TimeZone = "Mars/Olympus"
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
	assert.Contains(t, err.Error(), "STORE_REFERENCE_POLICY")
	assert.Contains(t, err.Error(), "STORE_TIMEZONE")
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestStoreConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, StoreConfig{TimeZone: "UTC"}.Location())
	assert.Equal(t, time.UTC, StoreConfig{TimeZone: "Nowhere/Invalid"}.Location())
}
