// Package validation wires go-playground/validator into echo so that request
// payloads are checked declaratively before any service code runs.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/carelink/carelink/pkg/apperr"
)

// Validator implements echo.Validator on top of go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report fields by their JSON name so the errors array matches the wire
	// format clients send.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate checks i against its struct tags and converts failures into a
// single Invalid error carrying the per-field messages.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Internal("Internal server error", err)
	}

	fields := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperr.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}

	return apperr.Invalid("Validation failed", fields)
}

// message renders a human-readable failure for a single field, mirroring the
// phrasing the API has always used.
func message(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", label, fe.Param())
	case "email":
		return "Please provide a valid email"
	case "datetime":
		return fmt.Sprintf("Please provide a valid %s (YYYY-MM-DD)", strings.ToLower(label))
	case "gt":
		return fmt.Sprintf("%s must be a positive integer", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// humanize turns a json field name like "date_of_birth" into "Date of birth".
func humanize(field string) string {
	words := strings.Split(field, "_")
	label := strings.Join(words, " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
