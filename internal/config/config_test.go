package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("HTTP_MAX_PAGE_SIZE", "")
	t.Setenv("HTTP_MAX_FIELD_LENGTH", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "staff-directory", cfg.App.Name)
	assert.Equal(t, "*", cfg.HTTP.AllowOrigins)
	assert.Zero(t, cfg.HTTP.MaxPageSize)
	assert.Zero(t, cfg.HTTP.MaxFieldLength)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "staff.events", cfg.Redis.EventsChannel)
	assert.True(t, cfg.Postgres.RunMigrations)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("HTTP_MAX_PAGE_SIZE", "100")
	t.Setenv("HTTP_MAX_FIELD_LENGTH", "512")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("POSTGRES_MAX_CONNS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.App.Addr())
	assert.Equal(t, 5*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, 100, cfg.HTTP.MaxPageSize)
	assert.Equal(t, 512, cfg.HTTP.MaxFieldLength)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("redis db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "x")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("negative page size cap", func(t *testing.T) {
		t.Setenv("HTTP_MAX_PAGE_SIZE", "-1")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("negative field length cap", func(t *testing.T) {
		t.Setenv("HTTP_MAX_FIELD_LENGTH", "-5")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestRequestTimeoutDisabled(t *testing.T) {
	assert.Zero(t, AppConfig{RequestTimeoutSeconds: 0}.RequestTimeout())
}
