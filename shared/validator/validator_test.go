package validator_test

import (
	"airline/shared/failure"
	"airline/shared/validator"
	"strings"
	"testing"
)

type planeRequest struct {
	Make  string `label:"plane make" validate:"required,max=32"`
	Seats int    `label:"seats"      validate:"gte=1,lt=500"`
	Zip   string `label:"zipcode"    validate:"omitempty,zipcode"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        planeRequest
		expectError bool
		contains    string
	}{
		{
			name: "valid struct",
			data: planeRequest{Make: "Boeing", Seats: 180, Zip: "92521"},
		},
		{
			name:        "missing required field",
			data:        planeRequest{Seats: 180},
			expectError: true,
			contains:    "plane make is required",
		},
		{
			name:        "seats out of range",
			data:        planeRequest{Make: "Boeing", Seats: 500},
			expectError: true,
			contains:    "seats must be less than 500",
		},
		{
			name:        "bad zipcode",
			data:        planeRequest{Make: "Boeing", Seats: 1, Zip: "9252"},
			expectError: true,
			contains:    "zipcode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if !tt.expectError {
				if err != nil {
					t.Errorf("expected no validation error, got: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			if failure.GetCode(err) != failure.CodeInvalidInput {
				t.Errorf("expected invalid input code, got %s", failure.GetCode(err))
			}

			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected message containing %q, got %q", tt.contains, err.Error())
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "digits", field: "0123", tag: "digits"},
		{name: "signed number is not digits", field: "-1", tag: "digits", expectError: true},
		{name: "decimal is not digits", field: "1.5", tag: "digits", expectError: true},
		{name: "number in range", field: 25, tag: "gte=0,lte=100"},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar("value", tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVarMessageUsesName(t *testing.T) {
	err := validator.ValidateVar("plane ID", "", "required")
	if err == nil {
		t.Fatal("expected validation error")
	}

	if err.Error() != "plane ID is required" {
		t.Errorf("expected 'plane ID is required', got %q", err.Error())
	}
}
