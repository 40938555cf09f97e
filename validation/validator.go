package validation

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/kbukum/reddish/errors"
)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns an AppError listing every field error, or nil.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}

	messages := lo.Map(v.errors, func(e FieldError, _ int) string {
		return e.Field + ": " + e.Message
	})
	return errors.Validation(strings.Join(messages, "; ")).
		WithDetail("fields", v.errors)
}

// Error is Validate returning a plain error, so a nil result compares equal
// to nil.
func (v *Validator) Error() error {
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Required checks that a string is not blank.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// Range checks that min <= value <= max.
func (v *Validator) Range(field string, value, minVal, maxVal int) *Validator {
	if value < minVal || value > maxVal {
		v.AddError(field, fmt.Sprintf("must be between %d and %d", minVal, maxVal))
	}
	return v
}

// Min checks that value is at least minVal.
func (v *Validator) Min(field string, value, minVal int) *Validator {
	if value < minVal {
		v.AddError(field, fmt.Sprintf("must be at least %d", minVal))
	}
	return v
}

// Max checks that value is at most maxVal.
func (v *Validator) Max(field string, value, maxVal int) *Validator {
	if value > maxVal {
		v.AddError(field, fmt.Sprintf("must be %d or less", maxVal))
	}
	return v
}

// Ordered checks that lower does not exceed upper.
func (v *Validator) Ordered(lowerField string, lower, upper int) *Validator {
	if lower > upper {
		v.AddError(lowerField, fmt.Sprintf("must not exceed %d", upper))
	}
	return v
}

// Probability checks that p lies in [0, 1].
func (v *Validator) Probability(field string, p float64) *Validator {
	if !(p >= 0 && p <= 1) {
		v.AddError(field, "must be between 0 and 1")
	}
	return v
}

// OneOf checks that a non-empty value is one of allowed.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value == "" || lo.Contains(allowed, value) {
		return v
	}
	v.AddError(field, "must be one of: "+strings.Join(allowed, ", "))
	return v
}

// Custom records message against field when condition is false.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

// Required validates a single required field.
func Required(field, value string) error {
	return New().Required(field, value).Error()
}
