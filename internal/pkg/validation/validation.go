package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"pawhaven/internal/domain"
)

var validate = validator.New()

// Struct runs the `validate` tags on a request body and converts the
// first failure into a domain validation error.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.NewValidationError("invalid request body")
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return domain.NewValidationError(fmt.Sprintf("%s is required", field))
	case "email":
		return domain.NewValidationError(fmt.Sprintf("%s must be a valid email address", field))
	case "max":
		return domain.NewValidationError(fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	case "gte":
		return domain.NewValidationError(fmt.Sprintf("%s must be at least %s", field, fe.Param()))
	default:
		return domain.NewValidationError(fmt.Sprintf("%s is invalid", field))
	}
}
