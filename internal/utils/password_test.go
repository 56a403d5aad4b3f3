package utils

import (
	"errors"
	"strings"
	"testing"
)

var testArgon2Params = Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}

func TestHashPassword_Format(t *testing.T) {
	encoded, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=19456,t=2,p=1$") {
		t.Errorf("unexpected encoding: %s", encoded)
	}
	if strings.Contains(encoded, "correct horse") {
		t.Error("hash must not contain the password")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	a, _ := HashPasswordWithParams("secret-password", testArgon2Params)
	b, _ := HashPasswordWithParams("secret-password", testArgon2Params)

	if a == b {
		t.Error("expected different hashes for the same password")
	}
}

func TestVerifyPassword(t *testing.T) {
	encoded, err := HashPasswordWithParams("secret-password", testArgon2Params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := VerifyPassword("secret-password", encoded)
	if err != nil || !ok {
		t.Fatalf("expected password to verify, got ok=%v err=%v", ok, err)
	}

	ok, err = VerifyPassword("wrong-password", encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected wrong password to be rejected")
	}
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{"empty", "", ErrInvalidPasswordHash},
		{"bcrypt", "$2a$10$abcdefghijklmnopqrstuu", ErrInvalidPasswordHash},
		{"wrong version", "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$a2V5", ErrIncompatibleArgonVersion},
		{"bad params", "$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5", ErrInvalidPasswordHash},
		{"bad salt", "$argon2id$v=19$m=1024,t=1,p=1$!!$a2V5", ErrInvalidPasswordHash},
		{"empty key", "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$", ErrInvalidPasswordHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyPassword("whatever", tt.encoded)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
