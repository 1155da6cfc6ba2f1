package config

import "errors"

var (
	// errNoTokenSignKey is returned when no configuration source supplied
	// a token signing key. The server refuses to start without one.
	errNoTokenSignKey = errors.New("token sign key is not set")

	// errInvalidLockoutPolicy is returned when the lockout threshold or
	// duration is out of range.
	errInvalidLockoutPolicy = errors.New("invalid lockout policy")
)
