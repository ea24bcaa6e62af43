package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every configuration validation failure.
var ErrInvalid = errors.New("invalid configuration")

// newValidator returns a validator that reports fields by their flag names.
func newValidator() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(flagName)

	if err := validate.RegisterValidation("exclusive", validateExclusive); err != nil {
		return nil, fmt.Errorf("registering exclusive validation: %w", err)
	}

	return validate, nil
}

// flagName names a field after its mapstructure key, falling back to the Go name.
func flagName(fld reflect.StructField) string {
	const splitSize = 2

	name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", splitSize)[0]
	if name == "" || name == "-" {
		return strings.ToLower(fld.Name)
	}

	return name
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	otherFieldName := fl.Param()
	field := fl.Field()

	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}

	otherField := parent.FieldByName(otherFieldName)

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() == reflect.String && otherField.Kind() == reflect.String {
		return field.String() == "" || otherField.String() == ""
	}

	return true
}

// describe turns validator errors into one message per field, naming flags.
func describe(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	messages := make([]string, 0, len(fieldErrs))

	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(messages, "; "))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "exclusive":
		other := fe.Param()
		if fld, ok := reflect.TypeOf(Config{}).FieldByName(other); ok {
			other = flagName(fld)
		}

		return fmt.Sprintf("--%s and --%s are mutually exclusive", fe.Field(), other)
	case "oneof":
		return fmt.Sprintf("--%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("at least %s %s required", fe.Param(), fe.Field())
		}

		return fmt.Sprintf("--%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("--%s failed %q validation", fe.Field(), fe.Tag())
	}
}
