// Package context carries the request id and the request-scoped logger from the
// transport into the use cases and on into outgoing alarm commands.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from callers and set on every response and webhook command.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echoRequestIDKey stores the id on echo.Context for the response envelope.
const echoRequestIDKey = "request_id"

// GetRequestID returns the id stored on the echo.Context, or "" before the
// request id middleware ran.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" for work that did not start with a request,
// such as alarms fired by the in-process scheduler.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when the
// call did not come through HTTP (alarms fired in-process, restore at boot).
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithRequestScope attaches requestID and a child of base tagged with it.
func WithRequestScope(ctx context.Context, requestID string, base *slog.Logger) (context.Context, *slog.Logger) {
	reqLogger := base.With(slog.String("request_id", requestID))

	return WithLogger(WithRequestID(ctx, requestID), reqLogger), reqLogger
}
