// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "lifelog/internal/domain/errors"
)

// Validator wraps a validator instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New creates an echo-compatible request validator.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct against its validate tags.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
