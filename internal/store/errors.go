package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new account
	// fails because an account with the same username already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrNoAccountFound is returned when a query expected to match at least
	// one account produces an empty result set.
	ErrNoAccountFound = errors.New("no account was found")

	// ErrAttemptNotRecorded is returned when an INSERT into the login-attempt
	// log completes without error but affects zero rows, meaning the audit
	// record was not actually persisted.
	ErrAttemptNotRecorded = errors.New("login attempt was not recorded")

	// ErrCommentNotSaved is returned when a comment INSERT completes without
	// error but the number of affected rows is zero.
	ErrCommentNotSaved = errors.New("comment was not saved")
)
