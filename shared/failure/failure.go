package failure

import (
	"errors"
)

// Code classifies a Failure by how the console reacts to it.
type Code int

const (
	CodeInternal Code = iota
	CodeInvalidInput
	CodeConflict
	CodeNotFound
)

func (c Code) String() string {
	switch c {
	case CodeInvalidInput:
		return "invalid input"
	case CodeConflict:
		return "conflict"
	case CodeNotFound:
		return "not found"
	default:
		return "internal"
	}
}

// Failure is a wrapper for error messages and their classification.
type Failure struct {
	Code    Code
	Message string
}

var InvalidMenuChoice = &Failure{Code: CodeInvalidInput, Message: "Your input is invalid!"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure for rejected input.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeInvalidInput,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure for rejected input with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    CodeInvalidInput,
		Message: msg,
	}
}

// InternalError returns a new Failure for database or I/O errors.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure for a missing row.
func NotFound(msg string) error {
	return &Failure{
		Code:    CodeNotFound,
		Message: msg,
	}
}

// Conflict returns a new Failure for a key that is already taken.
func Conflict(message string) error {
	return &Failure{
		Code:    CodeConflict,
		Message: message,
	}
}

// GetCode returns the code of an error interface.
func GetCode(err error) Code {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return CodeInternal
}

// Recoverable reports whether the operator can fix the error by typing a different value.
func Recoverable(err error) bool {
	code := GetCode(err)

	return code == CodeInvalidInput || code == CodeConflict
}
