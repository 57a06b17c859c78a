package password_test

import (
	"errors"
	"frontdesk/shared/password"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestDefaultCost(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{
			name:  "valid password",
			input: "s3cure-pa55word",
		},
		{
			name:  "short password",
			input: "a",
		},
		{
			name:  "password with unicode",
			input: "parolă-secretă",
		},
		{
			name:        "empty password returns error",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.input)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hash == "" {
				t.Error("expected non-empty hash")
			}
			if hash == tt.input {
				t.Error("expected hash to differ from plain password")
			}
		})
	}
}

func TestHashProducesUniqueSalts(t *testing.T) {
	first, err := password.Hash("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := password.Hash("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected different hashes for the same password")
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name        string
		password    string
		hash        string
		expectedErr error
	}{
		{
			name:     "matching password",
			password: "correct-password",
			hash:     hash,
		},
		{
			name:        "wrong password",
			password:    "wrong-password",
			hash:        hash,
			expectedErr: password.ErrInvalidPassword,
		},
		{
			name:        "empty password",
			password:    "",
			hash:        hash,
			expectedErr: password.ErrInvalidPassword,
		},
		{
			name:        "empty hash",
			password:    "correct-password",
			hash:        "",
			expectedErr: password.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	err := password.Verify("any-password", "not-a-bcrypt-hash")

	if err == nil {
		t.Error("expected error for malformed hash, got nil")
	}
	if errors.Is(err, password.ErrInvalidPassword) {
		t.Error("expected a wrapped bcrypt error, got ErrInvalidPassword")
	}
}
