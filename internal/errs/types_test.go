package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("OK"))
}

func TestHTTPErrorIs(t *testing.T) {
	err := NewNotFoundError("Student not found", false, nil)

	assert.True(t, errors.Is(err, &HTTPError{}))
	assert.False(t, errors.Is(err, errors.New("plain")))
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	original := NewBadRequestError("original", true, nil, []FieldError{{Field: "id", Error: "is required"}})
	replaced := original.WithMessage("replaced")

	assert.Equal(t, "original", original.Message)
	assert.Equal(t, "replaced", replaced.Message)
	assert.Equal(t, original.Status, replaced.Status)
	assert.Equal(t, original.Errors, replaced.Errors)
}

func TestConstructors(t *testing.T) {
	custom := "STUDENT_NOT_FOUND"

	notFound := NewNotFoundError("gone", true, &custom)
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, "STUDENT_NOT_FOUND", notFound.Code)

	tooMany := NewTooManyRequestsError("slow down")
	assert.Equal(t, http.StatusTooManyRequests, tooMany.Status)
	assert.Equal(t, "TOO_MANY_REQUESTS", tooMany.Code)

	internal := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.False(t, internal.Override)
}
