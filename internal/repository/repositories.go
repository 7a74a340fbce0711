package repository

import (
	"github.com/ivanlegranbizarro/studentapi/internal/server"
)

// Repositories is a container for all repository instances. It keeps
// router and binding setup clean: one object is passed around instead
// of individual repositories.
type Repositories struct {
	Students *StudentRepository
	Courses  *CourseRepository
}

// NewRepositories constructs the repository container from the shared
// application container (the DB pool lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Students: NewStudentRepository(s.DB.Pool),
		Courses:  NewCourseRepository(s.DB.Pool),
	}
}
