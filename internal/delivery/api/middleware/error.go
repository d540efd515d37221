// Package middleware contains echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"net/http"

	"trainbook/internal/delivery/api/response"
	deliverycontext "trainbook/internal/delivery/context"
	domainerrors "trainbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware turns errors returned by handlers into the error envelope
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Reason codes of domain
// errors reach the app unchanged; validation failures are not logged here since
// they are the user's input, not a fault.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

	case errors.As(err, &httpErr):
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, httpErrorCode(httpErr.Code), message, nil)

	default:
		m.log(c).Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
		_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
	}
}

// httpErrorCode names the transport failures echo raises before a handler runs
func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "ROUTE_NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	case http.StatusUnsupportedMediaType:
		return "UNSUPPORTED_MEDIA_TYPE"
	default:
		return "HTTP_ERROR"
	}
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
