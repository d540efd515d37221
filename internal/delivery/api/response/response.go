// Package response writes the JSON envelope shared by every endpoint: the payload
// under "data" or the reason under "error", and the request id under "meta".
package response

import (
	"net/http"

	deliverycontext "trainbook/internal/delivery/context"
	domainerrors "trainbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo is what the app shows for a failed call. Code is the reason code the
// screens switch on (NOT_FUTURE, SCHEDULE_FAILED, ...). Retryable tells the app to
// offer "try again" instead of asking the user to change the input.
type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Message is the payload of endpoints that only acknowledge
type Message struct {
	Message string `json:"message"`
}

func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Acknowledge answers 200 with a plain message
func Acknowledge(c echo.Context, message string) error {
	return OK(c, Message{Message: message})
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Server-side failures never expose details.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	info := &ErrorInfo{
		Code:      errorCode,
		Message:   message,
		Retryable: statusCode == http.StatusServiceUnavailable,
	}
	if statusCode < http.StatusInternalServerError && !isEmptyDetail(details) {
		info.Details = details
	}

	return c.JSON(statusCode, ErrorResponse{Error: info, Meta: meta(c)})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes domain errors with their reason code and status.
// Anything else is returned for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

func isEmptyDetail(details any) bool {
	if details == nil {
		return true
	}
	s, ok := details.(string)

	return ok && s == ""
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
