package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrValidation marks errors caused by invalid input
var ErrValidation = errors.New("validation failed")

// Invalid wraps err so that errors.Is(err, ErrValidation) holds.
func Invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// Invalidf formats an input error wrapping ErrValidation.
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Struct validates s and flattens validator errors into "Field: X, Tag: Y" messages.
func Struct(s interface{}) error {
	err := New().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %v", ErrValidation, messages)
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
