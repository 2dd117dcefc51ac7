package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WrapAndUnwrap(t *testing.T) {
	cause := errors.New("record not found")
	appErr := ErrNotFound(cause)

	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.ErrorIs(t, appErr, cause)

	var target *AppError
	assert.ErrorAs(t, error(appErr), &target)
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(ErrInvalidCredentials)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)

	_, ok = AsAppError(errors.New("plain error"))
	assert.False(t, ok)
}

func TestAppError_MarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("pq: connection refused"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "HTTPCode")
	assert.NotContains(t, string(raw), "connection refused")
	assert.Equal(t, "Internal server error", decoded["message"])
}

func TestHandleError_AppErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleError(c, ErrEmailAlreadyExists)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "Email already in use", body.Error.Message)
	assert.Equal(t, CodeAlreadyExists, body.Error.Code)
}

func TestHandleError_UnknownErrorBecomes500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleError(c, errors.New("something private"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestValidationError_CarriesDetails(t *testing.T) {
	appErr := ValidationError(map[string]string{"email": "This field is required"})
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"details"`)
	assert.Contains(t, string(raw), "This field is required")
}
