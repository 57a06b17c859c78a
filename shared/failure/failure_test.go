package failure_test

import (
	"errors"
	"fmt"
	"frontdesk/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "CapacityExceeded",
			failure: failure.CapacityExceeded,
			code:    http.StatusConflict,
			message: "room capacity exceeded for the requested dates",
		},
		{
			name:    "RoomBlocked",
			failure: failure.RoomBlocked,
			code:    http.StatusConflict,
			message: "room is blocked",
		},
		{
			name:    "InvalidDateRange",
			failure: failure.InvalidDateRange,
			code:    http.StatusBadRequest,
			message: "check-out date must be after check-in date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		build    func() error
		code     int
		message  string
		expected bool
	}{
		{
			name:     "BadRequest with error",
			build:    func() error { return failure.BadRequest(errors.New("validation failed")) },
			code:     http.StatusBadRequest,
			message:  "validation failed",
			expected: true,
		},
		{
			name:     "BadRequest with nil",
			build:    func() error { return failure.BadRequest(nil) },
			expected: false,
		},
		{
			name:     "BadRequestFromString",
			build:    func() error { return failure.BadRequestFromString("missing room number") },
			code:     http.StatusBadRequest,
			message:  "missing room number",
			expected: true,
		},
		{
			name:     "Unauthorized",
			build:    func() error { return failure.Unauthorized("token expired") },
			code:     http.StatusUnauthorized,
			message:  "token expired",
			expected: true,
		},
		{
			name:     "InternalError with error",
			build:    func() error { return failure.InternalError(errors.New("db down")) },
			code:     http.StatusInternalServerError,
			message:  "db down",
			expected: true,
		},
		{
			name:     "InternalError with nil",
			build:    func() error { return failure.InternalError(nil) },
			expected: false,
		},
		{
			name:     "NotFound",
			build:    func() error { return failure.NotFound("Booking") },
			code:     http.StatusNotFound,
			message:  "Booking",
			expected: true,
		},
		{
			name:     "Conflict",
			build:    func() error { return failure.Conflict("room already booked") },
			code:     http.StatusConflict,
			message:  "room already booked",
			expected: true,
		},
		{
			name:     "Forbidden",
			build:    func() error { return failure.Forbidden("viewer role cannot mutate") },
			code:     http.StatusForbidden,
			message:  "viewer role cannot mutate",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()

			if !tt.expected {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}
				return
			}

			var fail *failure.Failure
			if !errors.As(err, &fail) {
				t.Fatalf("expected *failure.Failure, got %T", err)
			}
			if fail.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, fail.Code)
			}
			if fail.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, fail.Message)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    failure.NotFound("Room"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("fetching room: %w", failure.RoomBlocked),
			expected: http.StatusConflict,
		},
		{
			name:     "plain error",
			input:    errors.New("something broke"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.input); code != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, code)
			}
		})
	}
}
