package repository

import (
	"context"

	"github.com/ivanlegranbizarro/studentapi/internal/model"
)

// CourseRepository fetches course records.
type CourseRepository struct {
	db Querier
}

// NewCourseRepository constructs a CourseRepository over the given pool.
func NewCourseRepository(db Querier) *CourseRepository {
	return &CourseRepository{db: db}
}

// FindByCode looks up a single course by its string code. A missing row
// surfaces as pgx.ErrNoRows.
func (r *CourseRepository) FindByCode(ctx context.Context, code string) (*model.Course, error) {
	const query = `
		SELECT code, title, credits
		FROM courses
		WHERE code = $1`

	var course model.Course
	err := r.db.QueryRow(ctx, query, code).Scan(
		&course.Code,
		&course.Title,
		&course.Credits,
	)
	if err != nil {
		return nil, err
	}

	return &course, nil
}
