package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance. Nested structs tagged `required` are checked as values.
func New() *Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Describe formats a failed rule as "field (tag)" or "field (tag=param)".
func Describe(field string, e FieldError) string {
	if e.Param() != "" {
		return fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param())
	}
	return fmt.Sprintf("%s (%s)", field, e.Tag())
}

// Messages describes every field error in err using fieldName to label the field.
// It returns nil when err is not a ValidationErrors.
func Messages(err error, fieldName func(FieldError) string) []string {
	var validationErrors ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, Describe(fieldName(e), e))
	}
	return messages
}
