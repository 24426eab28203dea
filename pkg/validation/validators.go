package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// E164-like phone: optional +, digits 7-15 length
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("birthdate", ValidDate)
	_ = v.RegisterValidation("birthdate_past", BirthDateInPast)
	_ = v.RegisterValidation("birthdate_min", BirthDateNotAncient)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // required handles empties
	}
	return phoneRegex.MatchString(val)
}

// ValidDate validates that a string parses as a calendar date
func ValidDate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	_, err := ParseDate(val)
	return err == nil
}

// BirthDateInPast validates that a date is strictly before today.
// Unparseable values pass here so only the birthdate tag fires for them.
func BirthDateInPast(fl validator.FieldLevel) bool {
	t, err := ParseDate(fl.Field().String())
	if err != nil || fl.Field().String() == "" {
		return true
	}
	return t.Before(today())
}

// BirthDateNotAncient validates that a date is no more than 110 years back
func BirthDateNotAncient(fl validator.FieldLevel) bool {
	t, err := ParseDate(fl.Field().String())
	if err != nil || fl.Field().String() == "" {
		return true
	}
	return t.After(today().AddDate(-110, 0, 0))
}

// ParseDate parses a wire date in the date-only layout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
