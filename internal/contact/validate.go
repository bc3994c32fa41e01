package contact

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/webcraftstudio/webcraft/internal/validation"
)

// Validation messages, in the order the rules are checked.
const (
	MsgNameRequired     = "Name is required"
	MsgBusinessRequired = "Business name is required"
	MsgEmailInvalid     = "Valid email address is required"
	MsgBudgetInvalid    = "Budget must be one of the listed ranges"
	MsgMessageRequired  = "Message is required"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation error")

// ValidationResult is the outcome of checking a FormState.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Message joins every failing rule into one sentence list.
func (r ValidationResult) Message() string {
	return strings.Join(r.Errors, ". ")
}

// ValidationError carries a failed ValidationResult.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, ". ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Errors: append([]string(nil), r.Errors...)}
}

// Field order in these structs is the order errors are reported in.
type pageRules struct {
	Name    string `validate:"notblank"`
	Email   string `validate:"email"`
	Budget  Budget `validate:"budget"`
	Message string `validate:"notblank"`
}

type standaloneRules struct {
	Name     string `validate:"notblank"`
	Business string `validate:"notblank"`
	Email    string `validate:"email"`
	Budget   Budget `validate:"budget"`
	Message  string `validate:"notblank"`
}

var fieldMessages = map[string]string{
	"Name":     MsgNameRequired,
	"Business": MsgBusinessRequired,
	"Email":    MsgEmailInvalid,
	"Budget":   MsgBudgetInvalid,
	"Message":  MsgMessageRequired,
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func rulesValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validation.New()
		validate.RegisterValidation("budget", func(fl validator.FieldLevel) bool {
			return Budget(fl.Field().String()).Valid()
		})
	})
	return validate
}

// Validate checks form against the rules of variant and collects every
// failure, not just the first.
func Validate(form FormState, variant Variant) ValidationResult {
	var rules interface{}
	if variant.RequiresBusiness() {
		rules = standaloneRules{
			Name:     form.Name,
			Business: form.Company,
			Email:    form.Email,
			Budget:   form.Budget,
			Message:  form.Message,
		}
	} else {
		rules = pageRules{
			Name:    form.Name,
			Email:   form.Email,
			Budget:  form.Budget,
			Message: form.Message,
		}
	}

	err := rulesValidator().Struct(rules)
	if err == nil {
		return ValidationResult{Valid: true}
	}

	result := ValidationResult{}
	for _, fe := range validation.FormatValidationError(err) {
		if msg, ok := fieldMessages[fe.Field]; ok {
			result.Errors = append(result.Errors, msg)
		}
	}
	if len(result.Errors) == 0 {
		// not a field error; surface it rather than pretend the form is valid
		result.Errors = []string{err.Error()}
	}
	return result
}
