package service

import (
	"context"

	"github.com/MoodyMakai/WebDevForum/models"
)

// AuthService is the account guard: every login attempt and every
// credential change goes through it and nothing else.
type AuthService interface {
	// Register creates a new account after validating the username,
	// display name, and password strength.
	Register(ctx context.Context, username, password, displayName string) (models.Account, error)

	// EvaluateLogin decides one login attempt. Credential and lockout
	// rejections come back inside the decision; the error is non-nil only
	// for store failures.
	EvaluateLogin(ctx context.Context, username, password, origin string) (models.LoginDecision, error)

	// ChangePassword verifies the current password, applies the strength
	// policy to the new one, and persists the new hash. A successful
	// change invalidates session tokens issued before it.
	ChangePassword(ctx context.Context, accountID int64, currentPassword, newPassword string) error

	CreateToken(ctx context.Context, account models.Account) (models.Token, error)

	// ParseToken validates a raw session token and checks that it was not
	// issued before the account's last password change.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService handles the mutable display attributes of an account.
type ProfileService interface {
	// UpdateDisplayName validates and persists a new display name,
	// rewriting the denormalized copies on the account's comments.
	UpdateDisplayName(ctx context.Context, accountID int64, displayName string) error

	// UpdateColor validates and persists a new name color.
	UpdateColor(ctx context.Context, accountID int64, color string) error
}

// CommentService owns the shared feed.
type CommentService interface {
	PostComment(ctx context.Context, accountID int64, content string) (models.Comment, error)
	ListFeed(ctx context.Context, filter models.FeedFilter) ([]models.Comment, error)
}

// AppInfoService exposes build/runtime information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
