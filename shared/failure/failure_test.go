package failure_test

import (
	"airline/shared/failure"
	"errors"
	"fmt"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    failure.CodeInvalidInput,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: failure.CodeInvalidInput, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    failure.Code
		message string
	}{
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("custom bad request"),
			code:    failure.CodeInvalidInput,
			message: "custom bad request",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("plane 101 already exists"),
			code:    failure.CodeConflict,
			message: "plane 101 already exists",
		},
		{
			name:    "not found",
			err:     failure.NotFound("flight 200 not found"),
			code:    failure.CodeNotFound,
			message: "flight 200 not found",
		},
		{
			name:    "internal",
			err:     failure.InternalError(errors.New("connection reset")),
			code:    failure.CodeInternal,
			message: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, f.Message)
			}
		})
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil internal error")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name        string
		input       error
		expected    failure.Code
		recoverable bool
	}{
		{
			name:        "failure error",
			input:       &failure.Failure{Code: failure.CodeInvalidInput, Message: "test"},
			expected:    failure.CodeInvalidInput,
			recoverable: true,
		},
		{
			name:        "wrapped conflict",
			input:       fmt.Errorf("failed to create plane: %w", failure.Conflict("taken")),
			expected:    failure.CodeConflict,
			recoverable: true,
		},
		{
			name:     "not found",
			input:    failure.NotFound("missing"),
			expected: failure.CodeNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: failure.CodeInternal,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: failure.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := failure.GetCode(tt.input); result != tt.expected {
				t.Errorf("expected code to be %s, got %s", tt.expected, result)
			}

			if result := failure.Recoverable(tt.input); result != tt.recoverable {
				t.Errorf("expected recoverable to be %v, got %v", tt.recoverable, result)
			}
		})
	}
}
