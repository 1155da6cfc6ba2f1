package models

// RejectReason classifies why a login attempt was refused.
type RejectReason string

const (
	// ReasonInvalidCredentials covers both an unknown username and a
	// wrong password. The two cases are deliberately indistinguishable
	// to the caller to prevent username enumeration.
	ReasonInvalidCredentials RejectReason = "invalid_credentials"

	// ReasonAccountLocked means the account is inside an active lockout
	// window and credentials were not even consulted.
	ReasonAccountLocked RejectReason = "account_locked"
)

// LoginDecision is the outcome of evaluating one login attempt.
// Exactly one of the two shapes holds: Accepted with a populated Summary,
// or rejected with a Reason.
type LoginDecision struct {
	Accepted bool           `json:"accepted"`
	Reason   RejectReason   `json:"reason,omitempty"`
	Summary  AccountSummary `json:"summary,omitempty"`
}

// Accept builds an accepting decision carrying the session summary.
func Accept(summary AccountSummary) LoginDecision {
	return LoginDecision{Accepted: true, Summary: summary}
}

// Reject builds a rejecting decision with the given reason.
func Reject(reason RejectReason) LoginDecision {
	return LoginDecision{Accepted: false, Reason: reason}
}
