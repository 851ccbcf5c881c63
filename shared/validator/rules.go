package validator

import (
	"airline/shared/constant"
	"airline/shared/failure"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var statusAliases = map[string]string{
	"r":          constant.StatusReserved,
	"reserved":   constant.StatusReserved,
	"w":          constant.StatusWaitlisted,
	"waitlisted": constant.StatusWaitlisted,
	"c":          constant.StatusConfirmed,
	"confirmed":  constant.StatusConfirmed,
}

// Text accepts a non-empty value of at most maxLen characters.
func Text(name, raw string, maxLen int) (string, error) {
	if err := ValidateVar(name, raw, fmt.Sprintf("required,max=%d", maxLen)); err != nil {
		return constant.Empty, err
	}

	return raw, nil
}

// OptionalText accepts an empty value or one of at most maxLen characters.
func OptionalText(name, raw string, maxLen int) (string, error) {
	if err := ValidateVar(name, raw, fmt.Sprintf("max=%d", maxLen)); err != nil {
		return constant.Empty, err
	}

	return raw, nil
}

// Number accepts one or more decimal digits and nothing else.
func Number(name, raw string) (int, error) {
	if err := ValidateVar(name, raw, "required,digits"); err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.BadRequestFromString(name + " is too large") //nolint:wrapcheck
	}

	return value, nil
}

// NumberInRange accepts a Number that also satisfies tag, e.g. "gte=1,lt=500".
func NumberInRange(name, raw, tag string) (int, error) {
	value, err := Number(name, raw)
	if err != nil {
		return 0, err
	}

	if err := ValidateVar(name, value, tag); err != nil {
		return 0, err
	}

	return value, nil
}

// PositiveNumber accepts a Number greater than zero; used for ids and costs.
func PositiveNumber(name, raw string) (int, error) {
	return NumberInRange(name, raw, "gte=1")
}

// Date accepts a real calendar date written as YYYY-MM-DD.
func Date(name, raw string) (time.Time, error) {
	if err := ValidateVar(name, raw, "required,datetime="+constant.DateFormat); err != nil {
		return time.Time{}, err
	}

	date, err := time.Parse(constant.DateFormat, raw)
	if err != nil {
		return time.Time{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	return date, nil
}

// AirportCode accepts a non-empty code of at most five characters.
func AirportCode(name, raw string) (string, error) {
	return Text(name, raw, constant.MaxAirportCodeLength)
}

// Gender accepts F or M in any case and returns it upper-cased.
func Gender(raw string) (string, error) {
	gender := strings.ToUpper(raw)

	if err := ValidateVar("gender", gender, "required,oneof=F M"); err != nil {
		return constant.Empty, err
	}

	return gender, nil
}

// Phone accepts exactly ten digits.
func Phone(raw string) (string, error) {
	if err := ValidateVar("phone number", raw, "required,len=10,digits"); err != nil {
		return constant.Empty, err
	}

	return raw, nil
}

// Zipcode accepts 12345 or 12345-6789.
func Zipcode(raw string) (string, error) {
	if err := ValidateVar("zipcode", raw, "required,zipcode"); err != nil {
		return constant.Empty, err
	}

	return raw, nil
}

// Status maps a reservation status or its long name, in any case, to its single-letter code.
func Status(raw string) (string, error) {
	status, ok := statusAliases[strings.ToLower(raw)]
	if !ok {
		return constant.Empty, failure.BadRequestFromString("status must be one of W, R, C (waitlisted, reserved, confirmed)") //nolint:wrapcheck
	}

	return status, nil
}

// YesNo accepts y, yes, n or no in any case.
func YesNo(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, failure.BadRequestFromString("please answer yes or no") //nolint:wrapcheck
	}
}

// Field binds name to rule, producing the single-argument parser a prompt asks with.
func Field[T any](name string, rule func(name, raw string) (T, error)) func(string) (T, error) {
	return func(raw string) (T, error) {
		return rule(name, raw)
	}
}

func MaxText(maxLen int) func(name, raw string) (string, error) {
	return func(name, raw string) (string, error) {
		return Text(name, raw, maxLen)
	}
}

func OptionalMaxText(maxLen int) func(name, raw string) (string, error) {
	return func(name, raw string) (string, error) {
		return OptionalText(name, raw, maxLen)
	}
}

func Range(tag string) func(name, raw string) (int, error) {
	return func(name, raw string) (int, error) {
		return NumberInRange(name, raw, tag)
	}
}
