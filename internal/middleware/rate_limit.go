package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ivanlegranbizarro/studentapi/internal/errs"
	"github.com/ivanlegranbizarro/studentapi/internal/server"
)

// rateLimitWindow is the fixed window the per-IP cap applies to.
const rateLimitWindow = time.Minute

// RateLimitMiddleware enforces a per-IP request cap using Redis as a
// fixed-window counter store.
type RateLimitMiddleware struct {
	server *server.Server
}

// NewRateLimitMiddleware constructs a RateLimitMiddleware.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns an Echo middleware that counts requests per client IP
// in Redis and rejects with 429 once the configured per-minute cap is
// exceeded.
//
// Fail-open behavior: if rate limiting is disabled in config, or Redis
// is unreachable, requests pass through. A lookup API should degrade to
// unlimited rather than refuse all traffic when its counter store is
// down.
func (rl *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limit := rl.server.Config.Server.RateLimitPerMinute
			if limit <= 0 || rl.server.Redis == nil {
				return next(c)
			}

			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:%s:%d", c.RealIP(), time.Now().Unix()/int64(rateLimitWindow.Seconds()))

			count, err := rl.server.Redis.Incr(ctx, key).Result()
			if err != nil {
				GetLogger(c).Debug().Err(err).Msg("rate limit counter unavailable, allowing request")
				return next(c)
			}

			// First hit in this window sets the expiry; the key cleans
			// itself up after the window closes.
			if count == 1 {
				rl.server.Redis.Expire(ctx, key, rateLimitWindow)
			}

			if count > int64(limit) {
				GetLogger(c).Warn().
					Str("ip", c.RealIP()).
					Int64("count", count).
					Msg("rate limit exceeded")

				return errs.NewTooManyRequestsError("Too many requests, slow down")
			}

			return next(c)
		}
	}
}
