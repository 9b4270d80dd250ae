// Package validators contains custom validator/v10 rules.
package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,30}$`)

// PhoneValidation accepts loosely formatted phone numbers: digits with
// optional leading plus, spaces, dots, dashes and parentheses.
func PhoneValidation(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// Register installs every custom rule on v.
func Register(v *validator.Validate) error {
	return v.RegisterValidation("phone", PhoneValidation)
}
