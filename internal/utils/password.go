package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost factor used when hashing passwords.
const PasswordHashCost = 10

// HashPassword hashes the given plain-text password with bcrypt using
// PasswordHashCost and returns the encoded hash string.
//
// The hash embeds its own salt and cost, so no additional secret material is
// required to verify it later with ComparePassword.
//
// Returns a wrapped error if hashing fails (e.g. the password exceeds
// bcrypt's 72-byte input limit).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword checks the given plain-text password against a bcrypt hash
// produced by HashPassword.
//
// Returns nil when the password matches and a non-nil error otherwise.
// Callers should treat any error as a credential mismatch and must not
// surface the underlying bcrypt error to clients.
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
