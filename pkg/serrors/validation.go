package serrors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps a form field to a single display message.
type ValidationErrors map[string]string

// FieldErrors mirrors the backend envelope's errors payload: a map of
// field name to the list of messages reported for that field.
type FieldErrors map[string][]string

// Flatten joins a structured field-error map into one display string,
// "field: message" segments in stable field order.
func (f FieldErrors) Flatten() string {
	if len(f) == 0 {
		return ""
	}
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs := f[field]
		if len(msgs) == 0 {
			continue
		}
		parts = append(parts, field+": "+strings.Join(msgs, "; "))
	}
	return strings.Join(parts, "; ")
}

// ProcessValidatorErrors converts go-playground validation errors into
// per-field display messages. fieldLabel maps the struct field name to a
// human label; an empty return falls back to the field name itself.
func ProcessValidatorErrors(errs validator.ValidationErrors, fieldLabel func(field string) string) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, err := range errs {
		label := ""
		if fieldLabel != nil {
			label = fieldLabel(err.Field())
		}
		if label == "" {
			label = err.Field()
		}
		out[err.Field()] = validationMessage(label, err)
	}
	return out
}

func validationMessage(label string, err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s", label, err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", label, err.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not precede %s", label, err.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a valid date", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, err.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
