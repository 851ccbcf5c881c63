package validator

import (
	"airline/shared/failure"
	"reflect"
	"regexp"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate

	digitsPattern  = regexp.MustCompile(`^[0-9]+$`)
	zipcodePattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

func registerDigitsValidation(field val.FieldLevel) bool {
	return digitsPattern.MatchString(field.Field().String())
}

func registerZipcodeValidation(field val.FieldLevel) bool {
	return zipcodePattern.MatchString(field.Field().String())
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}

		return field.Name
	})

	if err := validate.RegisterValidation("digits", registerDigitsValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("zipcode", registerZipcodeValidation); err != nil {
		panic(err)
	}
}

// ValidateStruct checks the `validate` tags of data and reports the first
// violation as an invalid-input failure, naming the field by its `label` tag.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err, "")

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar checks a single value against a tag, naming it name in the message.
func ValidateVar(name string, field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err, name)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
