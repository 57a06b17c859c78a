package base64_test

import (
	"frontdesk/shared/base64"
	"testing"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid image png",
			input:    "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg==",
			expected: "image/png",
		},
		{
			name:     "valid image jpeg",
			input:    "data:image/jpeg;base64,/9j/4AAQSkZJRg==",
			expected: "image/jpeg",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "missing base64 marker",
			input:    "data:image/png,iVBORw0KGgo=",
			expected: "",
		},
		{
			name:     "plain string",
			input:    "not a data url",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := base64.GetContentType(tt.input)

			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}
