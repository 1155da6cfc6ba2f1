package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/models"
)

// attemptRepository is the SQL-backed implementation of [AttemptRepository].
// The login_attempts table is append-only: rows are only ever inserted by
// the guard and deleted by the retention worker.
type attemptRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAttemptRepository constructs an [AttemptRepository] backed by the
// provided database connection and logger.
func NewAttemptRepository(db *DB, logger *logger.Logger) AttemptRepository {
	logger.Debug().Msg("creating login-attempt repository")
	return &attemptRepository{
		db:     db,
		logger: logger,
	}
}

// AppendLoginAttempt writes one audit record. A zero AccountID is stored as
// NULL so attempts against unknown usernames stay in the log without a
// dangling account reference.
func (r *attemptRepository) AppendLoginAttempt(ctx context.Context, attempt models.LoginAttempt) error {
	log := logger.FromContext(ctx)

	var accountID sql.NullInt64
	if attempt.AccountID != 0 {
		accountID = sql.NullInt64{Int64: attempt.AccountID, Valid: true}
	}

	attemptedAt := attempt.AttemptedAt
	if attemptedAt.IsZero() {
		attemptedAt = time.Now()
	}

	query, args, err := r.db.stmt().
		Insert("login_attempts").
		Columns("user_id", "username", "origin", "success", "attempted_at").
		Values(accountID, attempt.Username, attempt.Origin, attempt.Success, attemptedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*attemptRepository.AppendLoginAttempt").Msg("error building insert query")
		return fmt.Errorf("error building insert query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*attemptRepository.AppendLoginAttempt").Msg("error inserting login attempt")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrAttemptNotRecorded
	}

	return nil
}

// PruneAttemptsBefore deletes audit records older than cutoff and returns the
// number of removed rows. Used by the retention worker only; it never touches
// account security state.
func (r *attemptRepository) PruneAttemptsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.stmt().
		Delete("login_attempts").
		Where("attempted_at < ?", cutoff).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*attemptRepository.PruneAttemptsBefore").Msg("error building delete query")
		return 0, fmt.Errorf("error building delete query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*attemptRepository.PruneAttemptsBefore").Msg("error pruning login attempts")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}
