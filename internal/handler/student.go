package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ivanlegranbizarro/studentapi/internal/binding"
	"github.com/ivanlegranbizarro/studentapi/internal/errs"
	"github.com/ivanlegranbizarro/studentapi/internal/model"
	"github.com/ivanlegranbizarro/studentapi/internal/server"
)

// StudentHandler serves student lookup endpoints. The student itself is
// resolved by the binding middleware before any method here runs, so
// handlers read the bound entity and never re-fetch it.
type StudentHandler struct {
	Handler
}

// NewStudentHandler constructs a StudentHandler with access to shared
// app dependencies.
func NewStudentHandler(s *server.Server) *StudentHandler {
	return &StudentHandler{
		Handler: NewHandler(s),
	}
}

// StudentDetailRequest captures the path parameter for logging and
// validation. The binding middleware has already resolved it, so a
// failing validation here would indicate a route misconfiguration, not
// bad client input.
type StudentDetailRequest struct {
	ID int64 `param:"student" validate:"required,min=1"`
}

func (r *StudentDetailRequest) Validate() error {
	return validate.Struct(r)
}

// Detail returns the bound student as a bare JSON object: the entity's
// fields at the top level, no data envelope.
//
// GET /student/:student/detail
func (h *StudentHandler) Detail(c echo.Context, req *StudentDetailRequest) (*model.Student, error) {
	student, ok := binding.Bound[*model.Student](c, "student")
	if !ok {
		// The route was registered without its binding middleware.
		return nil, errs.NewInternalServerError()
	}

	return student, nil
}
