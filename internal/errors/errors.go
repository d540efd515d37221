// Package errors is the one errors import used across trainbook. Matching goes
// through the standard library; constructors and wrappers come from pkg/errors
// so that every error leaving a store or a platform adapter carries a stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return pkgerrors.New(text)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join keeps every error matchable with Is and As.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// RootMessage returns the message of the innermost pkg/errors cause, i.e. the
// driver or platform text without the annotations added on the way up.
func RootMessage(err error) string {
	if err == nil {
		return ""
	}

	return pkgerrors.Cause(err).Error()
}
