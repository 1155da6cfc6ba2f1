package service

import "time"

// LockoutPolicy is the account lockout configuration: after MaxFailures
// consecutive failed logins the account is locked for a flat LockDuration.
// There is no sliding window and no backoff; a single threshold crossing
// locks for the full duration regardless of how the failures were spaced.
type LockoutPolicy struct {
	MaxFailures  int
	LockDuration time.Duration
}

// SecurityState is the explicit per-account lockout state: a consecutive
// failed-attempt counter and the lockout expiry. A zero LockUntil means the
// account is not locked. Transitions are pure functions so the threshold
// and expiry rules can be tested exhaustively; persistence of a transition
// is the repository's concern.
type SecurityState struct {
	FailedAttempts int
	LockUntil      time.Time
}

// Locked reports whether the account is inside an active lockout window at
// the given instant. Expiry is lazy: nothing ever clears LockUntil on its
// own, the lock is simply ignored once now >= LockUntil.
func (s SecurityState) Locked(now time.Time) bool {
	return !s.LockUntil.IsZero() && now.Before(s.LockUntil)
}

// Strike returns the state after one more failed attempt at the given
// instant. When the incremented counter reaches the policy threshold the
// lockout is armed at now + LockDuration; below the threshold LockUntil is
// left untouched.
func (s SecurityState) Strike(now time.Time, policy LockoutPolicy) SecurityState {
	next := SecurityState{
		FailedAttempts: s.FailedAttempts + 1,
		LockUntil:      s.LockUntil,
	}

	if next.FailedAttempts >= policy.MaxFailures {
		next.LockUntil = now.Add(policy.LockDuration)
	}

	return next
}

// Reset returns the state after a successful login: counter zeroed and any
// lockout cleared, regardless of the prior failure count.
func (s SecurityState) Reset() SecurityState {
	return SecurityState{}
}
