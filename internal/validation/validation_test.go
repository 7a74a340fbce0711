package validation

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanlegranbizarro/studentapi/internal/errs"
)

var validate = validator.New()

type detailRequest struct {
	ID int64 `param:"student" validate:"required,min=1"`
}

func (r *detailRequest) Validate() error {
	return validate.Struct(r)
}

func paramContext(t *testing.T, name, value string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func TestBindAndValidateBindsPathParam(t *testing.T) {
	c := paramContext(t, "student", "7")

	var req detailRequest
	require.NoError(t, BindAndValidate(c, &req))
	assert.Equal(t, int64(7), req.ID)
}

func TestBindAndValidateRejectsMissingRequired(t *testing.T) {
	c := paramContext(t, "student", "0")

	var req detailRequest
	err := BindAndValidate(c, &req)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.NotEmpty(t, httpErr.Errors)
	assert.Equal(t, "id", httpErr.Errors[0].Field)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	custom := CustomValidationErrors{
		{Field: "code", Message: "must look like CS101"},
	}

	msg, fieldErrors := extractValidationError(custom)

	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "code", fieldErrors[0].Field)
	assert.Equal(t, "must look like CS101", fieldErrors[0].Error)
}

func TestExtractValidationErrorMessages(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=2"`
	}

	err := validate.Struct(&payload{Email: "not-an-email", Name: "x"})
	require.Error(t, err)

	msg, fieldErrors := extractValidationError(err)

	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 2)

	byField := map[string]string{}
	for _, fe := range fieldErrors {
		byField[fe.Field] = fe.Error
	}
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "must be at least 2 characters", byField["name"])
}
