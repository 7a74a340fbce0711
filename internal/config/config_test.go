package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("STUDENTAPI_PRIMARY__ENV", "local")
	t.Setenv("STUDENTAPI_PRIMARY__LOG_LEVEL", "debug")

	t.Setenv("STUDENTAPI_SERVER__PORT", "8080")
	t.Setenv("STUDENTAPI_SERVER__READ_TIMEOUT", "10")
	t.Setenv("STUDENTAPI_SERVER__WRITE_TIMEOUT", "10")
	t.Setenv("STUDENTAPI_SERVER__IDLE_TIMEOUT", "60")
	t.Setenv("STUDENTAPI_SERVER__CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	t.Setenv("STUDENTAPI_SERVER__RATE_LIMIT_PER_MINUTE", "120")

	t.Setenv("STUDENTAPI_DATABASE__HOST", "localhost")
	t.Setenv("STUDENTAPI_DATABASE__PORT", "5432")
	t.Setenv("STUDENTAPI_DATABASE__USER", "studentapi")
	t.Setenv("STUDENTAPI_DATABASE__PASSWORD", "secret")
	t.Setenv("STUDENTAPI_DATABASE__NAME", "studentapi")
	t.Setenv("STUDENTAPI_DATABASE__SSL_MODE", "disable")
	t.Setenv("STUDENTAPI_DATABASE__MAX_OPEN_CONNS", "10")
	t.Setenv("STUDENTAPI_DATABASE__MAX_IDLE_CONNS", "5")
	t.Setenv("STUDENTAPI_DATABASE__CONN_MAX_LIFETIME", "300")
	t.Setenv("STUDENTAPI_DATABASE__CONN_MAX_IDLE_TIME", "60")

	t.Setenv("STUDENTAPI_REDIS__ADDRESS", "localhost:6379")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "debug", cfg.Primary.LogLevel)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 120, cfg.Server.RateLimitPerMinute)
	assert.Equal(t,
		[]string{"http://localhost:3000", "http://localhost:5173"},
		cfg.Server.CORSAllowedOrigins)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
}

func TestLoadFailsOnMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STUDENTAPI_DATABASE__HOST", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
}
