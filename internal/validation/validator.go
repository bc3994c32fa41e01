package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// emailPart excludes @ and every rune a browser treats as whitespace,
// including NBSP, the Unicode space separators, vertical tab and BOM.
const emailPart = `[^\s\v\p{Z}\x{FEFF}@]+`

var (
	// emailRegex is deliberately loose: something@something.something with no
	// whitespace or extra @ in any part.
	emailRegex = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)
	nameRegex  = regexp.MustCompile(`^[\p{L}\p{M}0-9\s'.\-_]{1,100}$`)
)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("email", validateEmail)
	v.RegisterValidation("notblank", validateNotBlank)
	v.RegisterValidation("name", validateName)
}

// New returns a validator with the custom validators registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// IsEmail reports whether s looks like an email address
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// validateEmail checks if the email is valid
func validateEmail(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

// IsBlankRune reports whether r is whitespace for form purposes. Unlike
// unicode.IsSpace it covers the byte order mark and leaves out U+0085.
func IsBlankRune(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

// Trim strips leading and trailing blank runes
func Trim(s string) string {
	return strings.TrimFunc(s, IsBlankRune)
}

// validateNotBlank rejects empty and whitespace-only strings
func validateNotBlank(fl validator.FieldLevel) bool {
	return Trim(fl.Field().String()) != ""
}

// validateName checks if the name is valid
func validateName(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(Trim(fl.Field().String()))
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// FormatValidationError formats validation errors into a user-friendly response
func FormatValidationError(err error) []ValidationError {
	var errs []ValidationError
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errs = append(errs, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Param(),
			})
		}
	}
	return errs
}
