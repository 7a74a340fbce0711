package handler

import (
	"github.com/ivanlegranbizarro/studentapi/internal/server"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Health  *HealthHandler  // liveness/readiness endpoints
	Student *StudentHandler // student lookup endpoints
	Course  *CourseHandler  // course lookup endpoints
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Student: NewStudentHandler(s),
		Course:  NewCourseHandler(s),
	}
}
