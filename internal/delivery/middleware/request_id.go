package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "trainbook/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds ids accepted from callers. The id travels on as a
// Pub/Sub attribute of alarm commands.
const maxRequestIDLength = 128

// RequestIDMiddleware tags every request with an id and a logger carrying it
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id when it is usable and mints one
// otherwise. The id is echoed in the response and put into the request context
// together with a child logger, so alarms scheduled by this request can be traced.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := incomingRequestID(c.Request())
		if requestID == "" {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx, _ := deliverycontext.WithRequestScope(c.Request().Context(), requestID, m.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func incomingRequestID(req *http.Request) string {
	id := req.Header.Get(deliverycontext.HeaderXRequestID)
	if id == "" || len(id) > maxRequestIDLength {
		return ""
	}

	for _, r := range id {
		if !isRequestIDRune(r) {
			return ""
		}
	}

	return id
}

func isRequestIDRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_', r == '.', r == ':':
		return true
	default:
		return false
	}
}
