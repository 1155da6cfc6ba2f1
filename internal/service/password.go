package service

import (
	"regexp"
	"unicode"
)

// minPasswordLength is the lower bound of the password strength policy.
const minPasswordLength = 8

var (
	usernamePattern    = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)
	displayNamePattern = regexp.MustCompile(`^[A-Za-z0-9 _-]{3,30}$`)
	colorPattern       = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// validatePasswordStrength applies the password policy: at least
// minPasswordLength characters with at least one uppercase letter, one
// lowercase letter, one digit, and one non-alphanumeric symbol.
// Returns ErrWeakPassword on any violation.
func validatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return ErrWeakPassword
	}

	return nil
}

// validateUsername checks the immutable login identifier: 3-30 characters
// of letters, digits, and underscores.
func validateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}

	return nil
}

// validateDisplayName checks the mutable display name: 3-30 characters of
// letters, digits, spaces, underscores, and hyphens.
func validateDisplayName(displayName string) error {
	if !displayNamePattern.MatchString(displayName) {
		return ErrInvalidDisplayName
	}

	return nil
}

// validateColor checks a name color: "#" followed by exactly 6 hex digits.
func validateColor(color string) error {
	if !colorPattern.MatchString(color) {
		return ErrInvalidColor
	}

	return nil
}
