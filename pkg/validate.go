package pkg

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names, so the client sees the names it sent
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs the `validate` struct tags of s. The returned error wraps ErrValidation
// and names the first offending field.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}

	fe := validationErrs[0]
	field := fe.Namespace()
	// drop the root struct name, e.g. CreateWorkoutRequest.sets[0].reps -> sets[0].reps
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Errorf("%w: %s must have at least %s item(s)", ErrValidation, field, fe.Param())
		}
		return fmt.Errorf("%w: %s must be at least %s", ErrValidation, field, fe.Param())
	case "gt":
		return fmt.Errorf("%w: %s must be greater than %s", ErrValidation, field, fe.Param())
	case "gte":
		return fmt.Errorf("%w: %s must be greater than or equal to %s", ErrValidation, field, fe.Param())
	case "oneof":
		return fmt.Errorf("%w: %s must be one of [%s]", ErrValidation, field, fe.Param())
	default:
		return fmt.Errorf("%w: %s is invalid (%s)", ErrValidation, field, fe.Tag())
	}
}
