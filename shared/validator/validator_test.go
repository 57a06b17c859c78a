package validator_test

import (
	"frontdesk/shared/validator"
	"strings"
	"testing"
)

type guestRequest struct {
	FullName string `validate:"required" json:"full_name"`
	Phone    string `validate:"omitempty,min=5" json:"phone"`
	Gender   string `validate:"omitempty,oneof=male female" json:"gender"`
	Age      int    `validate:"gte=0,lte=120" json:"age"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *guestRequest
		expectError bool
	}{
		{
			name: "valid struct",
			data: &guestRequest{
				FullName: "Ana Popescu",
				Phone:    "+37360000000",
				Gender:   "female",
				Age:      42,
			},
		},
		{
			name: "missing required field",
			data: &guestRequest{
				Phone: "+37360000000",
				Age:   42,
			},
			expectError: true,
		},
		{
			name: "invalid gender value",
			data: &guestRequest{
				FullName: "Ana Popescu",
				Gender:   "other",
			},
			expectError: true,
		},
		{
			name: "age out of range",
			data: &guestRequest{
				FullName: "Ana Popescu",
				Age:      150,
			},
			expectError: true,
		},
		{
			name: "optional fields omitted",
			data: &guestRequest{
				FullName: "Ana Popescu",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name: "valid body",
			body: `{"full_name":"Ana Popescu","age":42}`,
		},
		{
			name:        "malformed json",
			body:        `{"full_name":`,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"age":42}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data guestRequest
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
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
		{
			name:  "valid uuid",
			field: "6f1f39a4-3b44-4f93-8c10-0d9d9c7cf2ab",
			tag:   "uuid",
		},
		{
			name:        "invalid uuid",
			field:       "not-a-uuid",
			tag:         "uuid",
			expectError: true,
		},
		{
			name:  "valid date",
			field: "2026-08-30",
			tag:   "datetime=2006-01-02",
		},
		{
			name:        "invalid date",
			field:       "30/08/2026",
			tag:         "datetime=2006-01-02",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}
