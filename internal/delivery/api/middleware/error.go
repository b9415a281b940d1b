package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"taskhub/internal/delivery/api/response"
	deliverycontext "taskhub/internal/delivery/context"
	domainerrors "taskhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every handler error as the uniform error body.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. 5xx responses
// never carry the underlying cause; it is logged instead.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	opMessage, _ := response.OperationMessage(err)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() < http.StatusInternalServerError {
			_ = response.AppError(c, appErr)

			return
		}

		m.logUnexpected(c, err)
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), firstNonEmpty(opMessage, appErr.Message()), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = m.renderHTTPError(c, httpErr)

		return
	}

	m.logUnexpected(c, err)
	_ = response.InternalServerError(c, opMessage)
}

func (m *ErrorMiddleware) renderHTTPError(c echo.Context, httpErr *echo.HTTPError) error {
	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}

	switch {
	case httpErr.Code >= http.StatusInternalServerError:
		m.logUnexpected(c, httpErr)

		return response.InternalServerError(c, "")
	case httpErr.Code == http.StatusNotFound:
		// Unknown routes look like any other missing resource.
		return response.AppError(c, domainerrors.ErrNotFound)
	}

	code := strings.ToUpper(strings.ReplaceAll(http.StatusText(httpErr.Code), " ", "_"))
	if code == "" {
		code = "HTTP_ERROR"
	}

	return response.Error(c, httpErr.Code, code, message, nil)
}

func (m *ErrorMiddleware) logUnexpected(c echo.Context, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
