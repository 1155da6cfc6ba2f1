package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required request fields are
	// missing or fail validation before any store call is made.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single rejection for both an unknown
	// username and a wrong password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountLocked is returned while an account is inside an active
	// lockout window.
	ErrAccountLocked = errors.New("account is temporarily locked")

	// ErrCurrentPasswordIncorrect is returned by ChangePassword when the
	// supplied current password does not verify. No state is mutated.
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")

	// ErrWeakPassword is returned when a new password fails the strength
	// policy (min 8 chars, upper, lower, digit, symbol).
	ErrWeakPassword = errors.New("password does not meet strength policy")

	// ErrInvalidDisplayName is returned when a display name is out of the
	// 3-30 character range, contains forbidden characters, or equals the
	// username at registration time.
	ErrInvalidDisplayName = errors.New("invalid display name")

	// ErrInvalidUsername is returned when a username fails validation.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidColor is returned when a color is not "#" + 6 hex digits.
	ErrInvalidColor = errors.New("invalid name color")

	// ErrEmptyComment is returned when a submitted comment has no content.
	ErrEmptyComment = errors.New("comment content is empty")

	// ErrCommentTooLong is returned when a comment exceeds the size cap.
	ErrCommentTooLong = errors.New("comment content is too long")

	// ErrTokenIsExpiredOrInvalid is the normalised rejection for any
	// session-token validation failure, including tokens issued before
	// the account's last password change.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps JWT generation failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrVersionIsNotSpecified is returned at startup when no application
	// version was configured.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
