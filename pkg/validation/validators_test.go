package validation_test

import (
	"testing"
	"time"

	"go-contact-manager/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type birthDateProbe struct {
	BirthDate string `validate:"required,birthdate,birthdate_past,birthdate_min"`
}

type phoneProbe struct {
	PhoneNumber string `validate:"required,valid_phone"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func date(years, days int) string {
	return time.Now().AddDate(years, 0, days).Format(validation.DateLayout)
}

func TestBirthDateRules(t *testing.T) {
	v := newValidate()

	assert.NoError(t, v.Struct(birthDateProbe{BirthDate: date(0, -1)}), "yesterday must pass")
	assert.Error(t, v.Struct(birthDateProbe{BirthDate: date(0, 0)}), "today must fail")
	assert.Error(t, v.Struct(birthDateProbe{BirthDate: date(0, 5)}), "future must fail")
	assert.Error(t, v.Struct(birthDateProbe{BirthDate: date(-111, 0)}), "older than 110 years must fail")
	assert.NoError(t, v.Struct(birthDateProbe{BirthDate: date(-100, 0)}), "100 years ago must pass")
}

func TestBirthDateMessages(t *testing.T) {
	v := newValidate()

	err := v.Struct(birthDateProbe{BirthDate: date(0, 5)})
	fields := validation.FormatValidationErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "birth_date", fields[0].Field)
	assert.Equal(t, "BirthDate must be in the past", fields[0].Message)

	err = v.Struct(birthDateProbe{BirthDate: "garbage"})
	fields = validation.FormatValidationErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "BirthDate is not a valid date", fields[0].Message)
}

func TestPhoneRule(t *testing.T) {
	v := newValidate()

	valid := []string{"1234567", "+420777123456", "123456789012345"}
	for _, phone := range valid {
		assert.NoError(t, v.Struct(phoneProbe{PhoneNumber: phone}), phone)
	}

	invalid := []string{"123456", "1234567890123456", "++1234567", "12345a7", "+42 777 123"}
	for _, phone := range invalid {
		assert.Error(t, v.Struct(phoneProbe{PhoneNumber: phone}), phone)
	}
}
