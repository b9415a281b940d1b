// Package response renders success payloads and the uniform error body of the API.
package response

import (
	"net/http"

	deliverycontext "taskhub/internal/delivery/context"
	domainerrors "taskhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string                   `json:"error"`             // Category derived from the status code
	Code      string                   `json:"code"`              // Machine-readable code, e.g. "VALIDATION_FAILED"
	Message   string                   `json:"message"`           // User-facing message
	Details   domainerrors.FieldErrors `json:"details,omitempty"` // Per-field messages, 400 only
	RequestID string                   `json:"request_id"`
}

// Category maps a status code to the error category shown to clients.
func Category(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Validation Error"
	case http.StatusUnauthorized:
		return "Authentication Error"
	case http.StatusForbidden:
		return "Authorization Error"
	case http.StatusNotFound:
		return "Not Found"
	case http.StatusInternalServerError:
		return "Server Error"
	default:
		return "Error"
	}
}

// Success writes data as the response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes the uniform error body. Details are dropped for anything but 400.
func Error(c echo.Context, statusCode int, errorCode, message string, details domainerrors.FieldErrors) error {
	if statusCode != http.StatusBadRequest || len(details) == 0 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error:     Category(statusCode),
		Code:      errorCode,
		Message:   message,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// AppError renders a domain error.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// InternalServerError writes ErrInternalError, optionally with a more specific message.
func InternalServerError(c echo.Context, message string) error {
	if message == "" {
		message = domainerrors.ErrInternalError.Message()
	}

	return Error(c, domainerrors.ErrInternalError.HTTPCode(), domainerrors.ErrInternalError.ErrorCode(), message, nil)
}

// operationError remembers which operation failed so that unexpected errors
// can be reported with an operation-specific message.
type operationError struct {
	err     error
	message string
}

func (e *operationError) Error() string { return e.message + ": " + e.err.Error() }
func (e *operationError) Unwrap() error { return e.err }

// Operation annotates err with the message clients see if err is not a 4xx domain error.
// It returns nil when err is nil.
func Operation(err error, message string) error {
	if err == nil {
		return nil
	}

	return &operationError{err: err, message: message}
}

// OperationMessage returns the message attached by Operation, if any.
func OperationMessage(err error) (string, bool) {
	var opErr *operationError
	if errors.As(err, &opErr) {
		return opErr.message, true
	}

	return "", false
}
