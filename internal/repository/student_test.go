package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentFindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	enrolledAt := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, first_name, last_name, email, enrolled_at\s+FROM students\s+WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name", "email", "enrolled_at"}).
			AddRow(int64(7), "Alice", "Doe", "alice@example.com", enrolledAt))

	repo := NewStudentRepository(mock)
	student, err := repo.FindByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), student.ID)
	assert.Equal(t, "Alice", student.FirstName)
	assert.Equal(t, "alice@example.com", student.Email)
	assert.Equal(t, enrolledAt, student.EnrolledAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentFindByIDNoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, first_name, last_name, email, enrolled_at\s+FROM students\s+WHERE id = \$1`).
		WithArgs(int64(12345)).
		WillReturnError(pgx.ErrNoRows)

	repo := NewStudentRepository(mock)
	student, err := repo.FindByID(context.Background(), 12345)

	// The raw driver miss surfaces untouched so the binding layer can
	// classify it.
	require.ErrorIs(t, err, pgx.ErrNoRows)
	assert.Nil(t, student)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseFindByCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT code, title, credits\s+FROM courses\s+WHERE code = \$1`).
		WithArgs("CS101").
		WillReturnRows(pgxmock.NewRows([]string{"code", "title", "credits"}).
			AddRow("CS101", "Intro to Computer Science", 5))

	repo := NewCourseRepository(mock)
	course, err := repo.FindByCode(context.Background(), "CS101")

	require.NoError(t, err)
	assert.Equal(t, "CS101", course.Code)
	assert.Equal(t, 5, course.Credits)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseFindByCodeNoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT code, title, credits\s+FROM courses\s+WHERE code = \$1`).
		WithArgs("ART999").
		WillReturnError(pgx.ErrNoRows)

	repo := NewCourseRepository(mock)
	course, err := repo.FindByCode(context.Background(), "ART999")

	require.ErrorIs(t, err, pgx.ErrNoRows)
	assert.Nil(t, course)
}
