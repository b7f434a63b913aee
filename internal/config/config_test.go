package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("ADMIN_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "event-planner", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "dev-secret", cfg.Auth.JWTSecret)
	assert.Empty(t, cfg.Auth.AdminAPIKey)
	assert.Equal(t, 60, cfg.Auth.AccessTokenTTLMinutes)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_JWT_SECRET", "prod-secret")
	t.Setenv("ADMIN_API_KEY", "admin-key")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "15")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "prod-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "admin-key", cfg.Auth.AdminAPIKey)
	assert.Equal(t, 15, cfg.Auth.AccessTokenTTLMinutes)
	assert.False(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, 5*time.Second, cfg.App.RequestTimeout())
}

func TestLoadProductionRequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestGetEnvAsIntFallback(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))

	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, getEnvAsInt("SOME_INT", 7))
}
