package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"gt":       "{field} must be greater than {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"lt":       "{field} must be less than {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"len":      "{field} must be exactly {param} characters",
		"digits":   "{field} must contain digits only",
		"datetime": "{field} must be a valid date in the format YYYY-MM-DD",
		"zipcode":  "{field} must look like 12345 or 12345-6789",
		"gtefield": "{field} must not be before {param}",
	}
)

func message(err error, name string) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			field := valErr.Field()
			if name != "" {
				field = name
			}

			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
