package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// Loose phone shape: optional +, digits with spaces/dashes/parens, 7-20 chars
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
}

// ValidName validates that a string contains only valid name characters.
// Empty values pass; combine with required when the field is mandatory.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}
