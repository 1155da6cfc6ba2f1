package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It handles account creation, lookup, and all security-state updates
// against the "users" table, on either supported backend.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account and returns it with server-assigned
// fields (AccountID, CreatedAt) populated.
//
// Error handling:
//   - unique-constraint violation on username → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(r.db.stmt(), account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error building insert query")
		return models.Account{}, fmt.Errorf("error building insert query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&account.AccountID, &account.CreatedAt); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.Account{}, ErrUsernameTaken
		}

		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

// FindAccountByUsername retrieves the account whose username matches exactly.
//
// Error handling:
//   - empty result set → [ErrNoAccountFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountByUsernameQuery(r.db.stmt(), username)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByUsername").Msg("error building select query")
		return models.Account{}, fmt.Errorf("error building select query: %w", err)
	}

	return r.findOne(ctx, query, args)
}

// FindAccountByID retrieves the account with the given internal identifier.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountByIDQuery(r.db.stmt(), accountID)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByID").Msg("error building select query")
		return models.Account{}, fmt.Errorf("error building select query: %w", err)
	}

	return r.findOne(ctx, query, args)
}

func (r *accountRepository) findOne(ctx context.Context, query string, args []any) (models.Account, error) {
	log := logger.FromContext(ctx)

	var account models.Account
	var lockUntil, passwordChangedAt sql.NullTime

	row := r.db.QueryRowContext(ctx, query, args...)
	err := row.Scan(
		&account.AccountID,
		&account.Username,
		&account.PasswordHash,
		&account.DisplayName,
		&account.NameColor,
		&account.FailedAttempts,
		&lockUntil,
		&passwordChangedAt,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountFound
		}

		log.Err(err).Str("func", "*accountRepository.findOne").Msg("error scanning account row")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if lockUntil.Valid {
		account.LockUntil = lockUntil.Time
	}
	if passwordChangedAt.Valid {
		account.PasswordChangedAt = passwordChangedAt.Time
	}

	return account, nil
}

// IncrementFailedAttempts implements the one statement the lockout invariant
// depends on: the counter increment and the conditional arming of lock_until
// happen atomically inside the database, and the authoritative post-update
// state is read back through RETURNING. Two concurrent wrong-password
// attempts therefore observe distinct counter values.
func (r *accountRepository) IncrementFailedAttempts(ctx context.Context, accountID int64, threshold int, lockUntil time.Time) (int, time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStrikeQuery(r.db.stmt(), accountID, threshold, lockUntil)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.IncrementFailedAttempts").Msg("error building strike query")
		return 0, time.Time{}, fmt.Errorf("error building strike query: %w", err)
	}

	var failedAttempts int
	var lockedUntil sql.NullTime

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&failedAttempts, &lockedUntil); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, time.Time{}, ErrNoAccountFound
		}

		log.Err(err).Str("func", "*accountRepository.IncrementFailedAttempts").Msg("error updating security state")
		return 0, time.Time{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if !lockedUntil.Valid {
		return failedAttempts, time.Time{}, nil
	}

	return failedAttempts, lockedUntil.Time, nil
}

// ResetSecurityState zeroes failed_attempts and clears lock_until. Called on
// every successful login regardless of the prior failure count.
func (r *accountRepository) ResetSecurityState(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildResetSecurityStateQuery(r.db.stmt(), accountID)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ResetSecurityState").Msg("error building reset query")
		return fmt.Errorf("error building reset query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*accountRepository.ResetSecurityState").Msg("error resetting security state")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// UpdatePasswordHash replaces the stored credential and records the moment of
// the change, which in turn invalidates session tokens issued before it.
func (r *accountRepository) UpdatePasswordHash(ctx context.Context, accountID int64, newHash string, changedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordHashQuery(r.db.stmt(), accountID, newHash, changedAt)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdatePasswordHash").Msg("error building update query")
		return fmt.Errorf("error building update query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdatePasswordHash").Msg("error updating password hash")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// UpdateDisplayName rewrites the display name on the account and every
// denormalized author_name copy on its comments inside one transaction, so
// feed reads never observe a half-propagated rename.
func (r *accountRepository) UpdateDisplayName(ctx context.Context, accountID int64, displayName string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateDisplayName").Msg("error beginning transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	userQuery, userArgs, err := r.db.stmt().
		Update("users").
		Set("display_name", displayName).
		Where("user_id = ?", accountID).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, userQuery, userArgs...); err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateDisplayName").Msg("error updating display name")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	commentQuery, commentArgs, err := r.db.stmt().
		Update("comments").
		Set("author_name", displayName).
		Where("user_id = ?", accountID).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building cascade query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, commentQuery, commentArgs...); err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateDisplayName").Msg("error propagating display name to comments")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateDisplayName").Msg("error committing transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateColor persists a new name color for the account.
func (r *accountRepository) UpdateColor(ctx context.Context, accountID int64, color string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.stmt().
		Update("users").
		Set("name_color", color).
		Where("user_id = ?", accountID).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateColor").Msg("error updating name color")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
