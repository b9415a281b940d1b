package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskhub/internal/delivery/api/response"
	domainerrors "taskhub/internal/domain/errors"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, err error) (int, response.ErrorResponse, string) {
	t.Helper()

	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/tasks", nil), rec)
	m.HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body, logs.String()
}

func TestHandleHTTPError(t *testing.T) {
	t.Run("validation error keeps field details", func(t *testing.T) {
		err := errors.WithStack(domainerrors.ErrValidationFailed.WithField("title", "Title is required"))

		status, body, logs := renderError(t, err)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Validation Error", body.Error)
		assert.Equal(t, "VALIDATION_FAILED", body.Code)
		assert.Equal(t, []string{"Title is required"}, body.Details["title"])
		assert.Empty(t, logs)
	})

	t.Run("unexpected error uses the operation message", func(t *testing.T) {
		err := response.Operation(errors.New("disk on fire"), "An error occurred while creating task")

		status, body, logs := renderError(t, err)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Server Error", body.Error)
		assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), body.Code)
		assert.Equal(t, "An error occurred while creating task", body.Message)
		assert.Contains(t, logs, "disk on fire")
	})

	t.Run("unexpected error without operation", func(t *testing.T) {
		status, body, _ := renderError(t, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, domainerrors.ErrInternalError.Message(), body.Message)
		assert.NotContains(t, body.Message, "boom")
	})

	t.Run("server-side app error hides its own message behind the operation", func(t *testing.T) {
		err := response.Operation(errors.WithStack(domainerrors.ErrPasswordHashFailed), "An error occurred during registration")

		status, body, _ := renderError(t, err)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "PASSWORD_HASH_FAILED", body.Code)
		assert.Equal(t, "An error occurred during registration", body.Message)
		assert.Nil(t, body.Details)
	})

	t.Run("echo not found becomes a missing resource", func(t *testing.T) {
		status, body, _ := renderError(t, echo.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), body.Code)
		assert.Equal(t, "Not Found", body.Error)
	})

	t.Run("other echo errors keep their status", func(t *testing.T) {
		status, body, _ := renderError(t, echo.ErrMethodNotAllowed)
		assert.Equal(t, http.StatusMethodNotAllowed, status)
		assert.Equal(t, "METHOD_NOT_ALLOWED", body.Code)
		assert.Equal(t, "Error", body.Error)
	})
}
