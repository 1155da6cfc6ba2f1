package store

import (
	"context"
	"time"

	"github.com/MoodyMakai/WebDevForum/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repositories.go -package=mocks

// AccountRepository is the persistence boundary of the account guard.
// Implementations must serialize security-state updates per account:
// IncrementFailedAttempts is a single atomic statement so two concurrent
// strikes can never read the same counter value.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)
	FindAccountByID(ctx context.Context, accountID int64) (models.Account, error)

	// IncrementFailedAttempts atomically adds one failed attempt and, when
	// the incremented counter reaches threshold, sets lock_until to lockUntil.
	// It returns the authoritative post-update counter and lock timestamp.
	IncrementFailedAttempts(ctx context.Context, accountID int64, threshold int, lockUntil time.Time) (int, time.Time, error)

	// ResetSecurityState zeroes failed_attempts and clears lock_until.
	ResetSecurityState(ctx context.Context, accountID int64) error

	UpdatePasswordHash(ctx context.Context, accountID int64, newHash string, changedAt time.Time) error

	// UpdateDisplayName rewrites the display name together with every
	// denormalized author_name copy on the account's comments, in one
	// transaction.
	UpdateDisplayName(ctx context.Context, accountID int64, displayName string) error

	UpdateColor(ctx context.Context, accountID int64, color string) error
}

// AttemptRepository is the append-only login audit log.
type AttemptRepository interface {
	AppendLoginAttempt(ctx context.Context, attempt models.LoginAttempt) error

	// PruneAttemptsBefore deletes attempt records older than cutoff and
	// returns the number of deleted rows.
	PruneAttemptsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// CommentRepository persists the shared feed.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListComments(ctx context.Context, filter models.FeedFilter) ([]models.Comment, error)
}
