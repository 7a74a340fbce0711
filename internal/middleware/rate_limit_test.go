package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanlegranbizarro/studentapi/internal/config"
	"github.com/ivanlegranbizarro/studentapi/internal/server"
)

func limitContext(t *testing.T) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/student/7/detail", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	log := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{}, // RateLimitPerMinute zero: disabled
		Logger: &log,
	}

	invoked := false
	h := NewRateLimitMiddleware(s).Limit()(func(c echo.Context) error {
		invoked = true
		return nil
	})

	require.NoError(t, h(limitContext(t)))
	assert.True(t, invoked)
}

func TestRateLimitFailsOpenWhenRedisUnreachable(t *testing.T) {
	log := zerolog.Nop()
	cfg := &config.Config{}
	cfg.Server.RateLimitPerMinute = 1

	s := &server.Server{
		Config: cfg,
		Logger: &log,
		// Nothing listens here; every Redis command errors.
		Redis: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}),
	}

	invoked := 0
	h := NewRateLimitMiddleware(s).Limit()(func(c echo.Context) error {
		invoked++
		return nil
	})

	// Both requests pass even though the cap is 1: the counter store is
	// down and the limiter degrades to unlimited.
	require.NoError(t, h(limitContext(t)))
	require.NoError(t, h(limitContext(t)))
	assert.Equal(t, 2, invoked)
}
