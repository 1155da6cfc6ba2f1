package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the plaintext password.
//
// The returned string embeds the salt and cost parameters and is the only
// representation of the password ever persisted. bcrypt fails on inputs
// longer than 72 bytes; that error is surfaced to the caller.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword compares the plaintext password against a stored bcrypt
// hash in constant time.
//
// Returns (false, nil) when the password simply does not match, and a
// non-nil error only for unexpected conditions such as a malformed stored
// hash. Callers treat that as a fatal store-integrity failure, never as a
// wrong password.
func VerifyPassword(password, storedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}

	return false, fmt.Errorf("error verifying password: %w", err)
}
