package errors

import (
	"net/http"

	"trainbook/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Reason code shown to the caller, e.g. "NOT_FUTURE"
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// Kind groups reason codes into the error kinds callers react to
type Kind string

const (
	KindInvalidInput      Kind = "InvalidInput"
	KindInvalidDate       Kind = "InvalidDate"
	KindDuplicateAlarmID  Kind = "DuplicateAlarmId"
	KindScheduleFailed    Kind = "ScheduleFailed"
	KindNotFound          Kind = "NotFound"
	KindPersistenceFailed Kind = "PersistenceFailed"
	KindInternal          Kind = "Internal"
)

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the reason code so that copies made by WithDetails still
// compare equal to the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error kind
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the reason code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input validation
	ErrEventDateNotFuture = NewBaseError(
		KindInvalidDate,
		http.StatusBadRequest,
		"NOT_FUTURE",
		"Please select a future date",
		"",
	)

	ErrReminderInPast = NewBaseError(
		KindInvalidDate,
		http.StatusBadRequest,
		"REMINDER_IN_PAST",
		"Event date must be more than 60 days in the future",
		"",
	)

	ErrInvalidDateFormat = NewBaseError(
		KindInvalidDate,
		http.StatusBadRequest,
		"INVALID_DATE_FORMAT",
		"Invalid date format, expected YYYY-MM-DD",
		"",
	)

	ErrEmptyNote = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"EMPTY_NOTE",
		"Please enter a reminder note",
		"",
	)

	ErrValidationFailed = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Reminder lifecycle
	ErrDuplicateAlarmID = NewBaseError(
		KindDuplicateAlarmID,
		http.StatusConflict,
		"DUPLICATE_ALARM_ID",
		"A reminder with this alarm id already exists",
		"",
	)

	ErrScheduleFailed = NewBaseError(
		KindScheduleFailed,
		http.StatusServiceUnavailable,
		"SCHEDULE_FAILED",
		"Failed to schedule alarm, please try again",
		"",
	)

	ErrReminderNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"Reminder not found",
		"",
	)

	ErrPersistenceFailed = NewBaseError(
		KindPersistenceFailed,
		http.StatusInternalServerError,
		"PERSISTENCE_FAILED",
		"Failed to save reminder, please try again",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// KindOf returns the kind of err, or KindInternal when err is not a domain error
func KindOf(err error) Kind {
	var base *BaseError
	if errors.As(err, &base) {
		return base.Kind()
	}

	return KindInternal
}

// IsValidation reports whether err is a caller input problem that should be shown
// to the user rather than treated as a system fault
func IsValidation(err error) bool {
	kind := KindOf(err)

	return kind == KindInvalidDate || kind == KindInvalidInput
}
