// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers and binding
// their route parameters to entity lookups.
package router

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ivanlegranbizarro/studentapi/internal/binding"
	"github.com/ivanlegranbizarro/studentapi/internal/handler"
	"github.com/ivanlegranbizarro/studentapi/internal/middleware"
	"github.com/ivanlegranbizarro/studentapi/internal/repository"
	"github.com/ivanlegranbizarro/studentapi/internal/server"
)

// New builds the Echo instance: error funnel, global middleware stack,
// and all route registrations.
func New(s *server.Server, mws *middleware.Middlewares, h *handler.Handlers, repos *repository.Repositories) *echo.Echo {
	r := echo.New()
	r.HideBanner = true

	r.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	// Order matters: request IDs before the context enhancer, the
	// enhancer before anything that logs.
	r.Use(middleware.RequestID())
	r.Use(mws.ContextEnhancer.EnhanceContext())
	r.Use(mws.Global.RequestLogger())
	r.Use(mws.Global.Recover())
	r.Use(mws.Global.CORS())
	r.Use(mws.Global.Secure())
	r.Use(mws.RateLimit.Limit())

	registerSystemRoutes(r, h)
	registerAPIRoutes(r, h, repos)

	return r
}

// registerAPIRoutes wires the entity routes together with their binding
// descriptors. Each descriptor statically maps a path parameter (named
// after the lowercase entity) to the repository lookup that resolves it;
// the binding middleware runs the lookup before the handler.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, repos *repository.Repositories) {
	studentBinding := binding.Descriptor{
		Param: "student",
		Model: "Student",
		Resolve: binding.Int64Key(func(ctx context.Context, id int64) (any, error) {
			return repos.Students.FindByID(ctx, id)
		}),
	}

	courseBinding := binding.Descriptor{
		Param: "course",
		Model: "Course",
		Resolve: func(ctx context.Context, code string) (any, error) {
			return repos.Courses.FindByCode(ctx, code)
		},
	}

	r.GET("/student/:student/detail",
		handler.Handle(h.Student.Handler, h.Student.Detail, http.StatusOK),
		binding.Middleware(studentBinding))

	r.GET("/course/:course",
		handler.Handle(h.Course.Handler, h.Course.Show, http.StatusOK),
		binding.Middleware(courseBinding))
}
