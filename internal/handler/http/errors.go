package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// session token from a request. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request carries neither an "Authorization" header nor a
	// "token" query parameter.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into a scheme and a non-empty
	// token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
