package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError is one violated rule, addressed by the wire-facing field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldNames maps struct field names to their wire-facing JSON names
var FieldNames = map[string]string{
	"Name":        "name",
	"BirthDate":   "birth_date",
	"IsMarried":   "is_married",
	"PhoneNumber": "phone_number",
	"Salary":      "salary",
}

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Name":        "Name",
	"BirthDate":   "BirthDate",
	"PhoneNumber": "Phone number",
	"Salary":      "Salary",
}

// FormatValidationErrors converts validator.ValidationErrors to
// {field, message} pairs. All violations surface together.
func FormatValidationErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Field:   fieldName(e.Field()),
			Message: formatSingleError(e),
		})
	}
	return out
}

func formatSingleError(e validator.FieldError) string {
	label := fieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", label, e.Param())

	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, e.Param())

	case "birthdate":
		return fmt.Sprintf("%s is not a valid date", label)

	case "birthdate_past":
		return fmt.Sprintf("%s must be in the past", label)

	case "birthdate_min":
		return fmt.Sprintf("%s is not valid", label)

	case "valid_phone":
		return fmt.Sprintf("%s must contain only digits and optional leading + (7-15 chars)", label)

	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func fieldName(structField string) string {
	if name, ok := FieldNames[structField]; ok {
		return name
	}
	return structField
}

func fieldLabel(structField string) string {
	if label, ok := FieldLabels[structField]; ok {
		return label
	}
	return structField
}
