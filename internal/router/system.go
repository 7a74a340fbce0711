package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ivanlegranbizarro/studentapi/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// entity API: health status for Kubernetes/monitors.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
}
