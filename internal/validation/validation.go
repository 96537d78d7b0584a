// Package validation declares the input contract for every operation and
// checks payloads before any side effect. Optional fields are normalized to
// their no-value form here, exactly once; later layers never see an empty
// string standing in for "absent".
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Check validates a request contract. It returns nil when the payload is
// well formed, otherwise one message per offending field.
func Check(req interface{}) map[string]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"form": "Invalid request data."}
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = messageFor(fe)
	}
	return details
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label(fe.Field()))
	case "email":
		return "Invalid email format."
	case "url":
		return "Invalid URL format."
	case "uuid":
		return fmt.Sprintf("Invalid %s format.", strings.ToLower(label(fe.Field())))
	case "eqfield":
		return "Passwords do not match."
	case "datetime":
		return fmt.Sprintf("%s must be a valid date.", label(fe.Field()))
	case "oneof":
		return fmt.Sprintf("%s must be one of %s.", label(fe.Field()),
			strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long.", label(fe.Field()), fe.Param())
		}
		return fmt.Sprintf("%s is out of range.", label(fe.Field()))
	case "max":
		return fmt.Sprintf("%s is out of range.", label(fe.Field()))
	default:
		return fmt.Sprintf("%s is invalid.", label(fe.Field()))
	}
}

// label turns a wire name like "companyName" into "Company name".
func label(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeOptional maps an absent or blank optional field to nil.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
