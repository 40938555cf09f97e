package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/reddish/errors"
	"github.com/kbukum/reddish/str"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(tagName)
	})
	return validate
}

func tagName(fld reflect.StructField) string {
	for _, key := range []string{"mapstructure", "yaml", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return str.SnakeCase(fld.Name)
}

// RegisterStringRule adds a validate tag whose check receives the field's
// string value. Non-string fields fail the rule.
func RegisterStringRule(tag string, check func(string) bool) error {
	return getValidator().RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return check(fl.Field().String())
	})
}

// Validate validates a struct using `validate` tags. Failures are returned
// as an *errors.AppError carrying one FieldError per field under "fields".
func Validate(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Validation("validation failed").WithCause(err)
	}

	v := New()
	for _, e := range validationErrors {
		v.AddError(fieldPath(e), formatValidationError(e))
	}
	return v.Error()
}

// fieldPath drops the root struct name from the namespace, giving
// "logging.level" for a nested field.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return str.SnakeCase(e.Field())
}

func formatValidationError(e validator.FieldError) string {
	unit := ""
	if e.Kind() == reflect.String {
		unit = " characters"
	}

	switch e.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + e.Param() + unit
	case "max", "lte":
		return "must be at most " + e.Param() + unit
	case "gt":
		return "must be greater than " + e.Param()
	case "lt":
		return "must be less than " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "uuid", "uuid4":
		return "must be a valid UUID"
	default:
		return "failed " + e.Tag() + " check"
	}
}
