// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// EchoValidator wraps a shared validator instance for echo.
type EchoValidator struct {
	validate *validatorv10.Validate
}

// New builds the validator used by the HTTP server.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validatorv10.New(validatorv10.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and returns the raw validation error; the
// handlers translate it into the application taxonomy.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
