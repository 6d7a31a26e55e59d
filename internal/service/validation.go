package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs the struct's validate tags. If any required field is
// missing the whole input is rejected with missingMsg; otherwise the first
// failing rule is reported.
func validateStruct(in any, missingMsg string) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return newError(KindValidation, "%s", err.Error())
	}
	if missingMsg != "" {
		for _, fe := range ve {
			if fe.Tag() == "required" {
				return newError(KindValidation, "%s", missingMsg)
			}
		}
	}
	return newError(KindValidation, "%s", fieldError(ve[0]))
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "contains":
		return fmt.Sprintf("invalid %s", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
