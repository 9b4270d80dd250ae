package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := validators.Register(v); err != nil {
		panic(fmt.Sprintf("failed to register custom validators: %v", err))
	}
	return v
}

// ValidateStruct runs struct-tag validation and folds field errors into a
// single ErrValidation-wrapped error.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: [%s]", ErrValidation, strings.Join(messages, ", "))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
