package models

import "time"

// LoginAttempt is one row of the append-only login audit log. Exactly one
// record is written per login POST, including attempts against usernames
// that do not exist (those carry no account reference).
type LoginAttempt struct {
	// AttemptID is the internal unique identifier of the record.
	AttemptID int64 `json:"attempt_id"`

	// AccountID references the targeted account when it exists.
	// Zero means the submitted username matched no account.
	AccountID int64 `json:"account_id,omitempty"`

	// Username is the username as submitted, kept even for unknown
	// usernames so enumeration attempts remain visible in the audit log.
	Username string `json:"username"`

	// Origin is the remote address of the request. Used only for audit,
	// never for authorization.
	Origin string `json:"origin"`

	// Success records the outcome of the attempt.
	Success bool `json:"success"`

	// AttemptedAt is the insertion timestamp.
	AttemptedAt time.Time `json:"attempted_at"`
}

// TableName returns the name of the database table
// associated with the LoginAttempt model.
func (l LoginAttempt) TableName() string {
	return "login_attempts"
}
