package repository

import (
	"context"

	"github.com/ivanlegranbizarro/studentapi/internal/model"
)

// StudentRepository fetches student records.
type StudentRepository struct {
	db Querier
}

// NewStudentRepository constructs a StudentRepository over the given pool.
func NewStudentRepository(db Querier) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByID looks up a single student by primary key. A missing row
// surfaces as pgx.ErrNoRows, which the binding layer classifies as a
// not-found outcome.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*model.Student, error) {
	const query = `
		SELECT id, first_name, last_name, email, enrolled_at
		FROM students
		WHERE id = $1`

	var student model.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.EnrolledAt,
	)
	if err != nil {
		return nil, err
	}

	return &student, nil
}
