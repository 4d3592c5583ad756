package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("CONFIG_PATH", "does-not-exist.yaml")
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT")
}

func TestLoad_RequiresDatabaseDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "does-not-exist.yaml")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DSN")
}

func TestLoad_EnvOverridesAndDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "does-not-exist.yaml")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("SERVER_PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "http://localhost:3000", cfg.Server.BaseURL)
	assert.Equal(t, 60, cfg.JWT.TTLMinutes)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, "secret", cfg.JWT.Secret)
}
