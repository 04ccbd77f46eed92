package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chart-of-accounts/backend/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "chart-of-accounts", cfg.JWT.Issuer)
	assert.Equal(t, 50, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 500, cfg.Pagination.MaxLimit)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_URL", "sqlite://coa.db")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("JWT_EXPIRY", "1h")
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "10")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite://coa.db", cfg.Database.URL)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
	assert.Equal(t, time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRejectsInconsistentPagination(t *testing.T) {
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "100")
	t.Setenv("PAGINATION_MAX_LIMIT", "10")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, config.LogConfig{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, config.LogConfig{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, config.LogConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, config.LogConfig{Level: ""}.SlogLevel())
}
