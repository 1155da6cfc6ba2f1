package models

import "time"

// Account represents a forum user used for authentication and display.
// Credential and security-state fields must never be exposed outside
// trusted boundaries.
type Account struct {
	// AccountID is the internal unique identifier of the account.
	// It is not exposed via JSON and is used only at the persistence layer.
	AccountID int64 `json:"-"`

	// Username is the unique, immutable login identifier.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the account password.
	// This value MUST be a hash, never plaintext, and is compared only
	// through the constant-time verify primitive.
	PasswordHash string `json:"-"`

	// DisplayName is the mutable name shown next to the account's
	// comments. It must differ from Username at creation time.
	DisplayName string `json:"display_name"`

	// NameColor is the hex color ("#RRGGBB") used to render DisplayName.
	NameColor string `json:"name_color"`

	// FailedAttempts counts consecutive failed logins since the last
	// successful one. Reset to zero on success.
	FailedAttempts int `json:"-"`

	// LockUntil is the moment an active lockout expires. The zero value
	// means the account is not locked. Expiry is lazy: the lock is
	// simply ignored once now >= LockUntil.
	LockUntil time.Time `json:"-"`

	// PasswordChangedAt records the last password change. Session tokens
	// issued before this instant are rejected.
	PasswordChangedAt time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "users"
}

// AccountSummary is the non-sensitive projection of an Account handed to
// the transport layer for session establishment after a successful login.
type AccountSummary struct {
	AccountID   int64  `json:"account_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	NameColor   string `json:"name_color"`
}

// Summary builds the AccountSummary projection of the account.
func (a Account) Summary() AccountSummary {
	return AccountSummary{
		AccountID:   a.AccountID,
		Username:    a.Username,
		DisplayName: a.DisplayName,
		NameColor:   a.NameColor,
	}
}
