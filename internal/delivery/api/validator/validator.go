// Package validator plugs go-playground/validator into echo.
package validator

import (
	"strings"

	domainerrors "trainbook/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports json field names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: validate}
}

// Validate returns VALIDATION_FAILED naming every field that failed.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		problems = append(problems, fieldErr.Field()+" failed '"+fieldErr.Tag()+"'")
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}
