package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ivanlegranbizarro/studentapi/internal/binding"
	"github.com/ivanlegranbizarro/studentapi/internal/errs"
	"github.com/ivanlegranbizarro/studentapi/internal/model"
	"github.com/ivanlegranbizarro/studentapi/internal/server"
)

// CourseHandler serves course lookup endpoints. Courses are string-keyed
// (course code), so this exercises the binding registry with a
// non-numeric key.
type CourseHandler struct {
	Handler
}

// NewCourseHandler constructs a CourseHandler.
func NewCourseHandler(s *server.Server) *CourseHandler {
	return &CourseHandler{
		Handler: NewHandler(s),
	}
}

// CourseShowRequest captures the course code path parameter.
type CourseShowRequest struct {
	Code string `param:"course" validate:"required"`
}

func (r *CourseShowRequest) Validate() error {
	return validate.Struct(r)
}

// Show returns the bound course as a bare JSON object.
//
// GET /course/:course
func (h *CourseHandler) Show(c echo.Context, req *CourseShowRequest) (*model.Course, error) {
	course, ok := binding.Bound[*model.Course](c, "course")
	if !ok {
		return nil, errs.NewInternalServerError()
	}

	return course, nil
}
