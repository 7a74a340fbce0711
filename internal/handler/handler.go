// Package handler is the first layer. The first entry point
// for request logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and reads entities resolved by the binding
// layer. It acts as the interface between the HTTP request and the
// persistence layer.
package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ivanlegranbizarro/studentapi/internal/middleware"
	"github.com/ivanlegranbizarro/studentapi/internal/server"
	"github.com/ivanlegranbizarro/studentapi/internal/validation"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to access shared resources
// via *server.Server (config, logger, db, redis).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returned by value: the struct
// only contains a pointer, so copies are cheap and share the Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Validatable constrains a request payload to pointer-to-Req types that
// know how to validate themselves. The pipeline allocates a fresh Req
// per request, so payloads are never shared between requests.
type Validatable[Req any] interface {
	*Req
	validation.Validatable
}

// HandlerFunc represents a typed endpoint function that receives a
// bound-and-validated request payload and returns a response or an error.
type HandlerFunc[PReq validation.Validatable, Res any] func(c echo.Context, req PReq) (Res, error)

// handleRequest is the shared execution pipeline for all handlers.
// It centralizes request binding + validation, structured logging with
// request context, timing, and the JSON response write.
func handleRequest(
	c echo.Context,
	req validation.Validatable,
	handler func(c echo.Context) (any, error),
	status int,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	// Request-scoped logger set by the ContextEnhancer middleware;
	// already carries request_id, method, path and ip.
	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Error().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")

		// The global error handler formats the response.
		return err
	}
	validationDuration := time.Since(validationStart)

	handlerStart := time.Now()
	result, err := handler(c)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return c.JSON(status, result)
}

// Handle wraps a typed handler with binding, validation, error
// handling, logging and the JSON response write, returning an
// echo.HandlerFunc ready for route registration.
//
// Usage:
//
//	r.GET("/student/:student/detail", handler.Handle(h.Handler, h.detail, http.StatusOK))
func Handle[Req any, PReq Validatable[Req], Res any](
	h Handler,
	handler HandlerFunc[PReq, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context) (any, error) {
			return handler(c, req)
		}, status)
	}
}
