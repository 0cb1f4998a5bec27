package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Success(t *testing.T) {
	hash, err := HashPassword("s3cret-password")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "s3cret-password" {
		t.Error("hash must not equal the plain-text password")
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("expected a valid bcrypt hash, got: %v", err)
	}
	if cost != PasswordHashCost {
		t.Errorf("expected cost %d, got %d", PasswordHashCost, cost)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects inputs longer than 72 bytes
	_, err := HashPassword(strings.Repeat("a", 100))

	if err == nil {
		t.Fatal("expected error for over-long password, got nil")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, _ := HashPassword("same-password")
	second, _ := HashPassword("same-password")

	if first == second {
		t.Error("expected different hashes for the same password (random salt)")
	}
}

func TestComparePassword_Match(t *testing.T) {
	hash, _ := HashPassword("correct horse battery staple")

	if err := ComparePassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("expected match, got: %v", err)
	}
}

func TestComparePassword_Mismatch(t *testing.T) {
	hash, _ := HashPassword("correct horse battery staple")

	if err := ComparePassword(hash, "wrong password"); err == nil {
		t.Error("expected mismatch error, got nil")
	}
}

func TestComparePassword_NotAHash(t *testing.T) {
	if err := ComparePassword("plain-text", "plain-text"); err == nil {
		t.Error("expected error for malformed hash, got nil")
	}
}
