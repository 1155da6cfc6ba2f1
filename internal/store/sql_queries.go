package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MoodyMakai/WebDevForum/models"
)

// accountColumns is the full column set of the users table, in scan order.
var accountColumns = []string{
	"user_id",
	"username",
	"password_hash",
	"display_name",
	"name_color",
	"failed_attempts",
	"lock_until",
	"password_changed_at",
	"created_at",
}

// commentColumns is the full column set of the comments table, in scan order.
var commentColumns = []string{
	"comment_id",
	"user_id",
	"author_name",
	"content",
	"created_at",
}

const defaultFeedLimit = 50

func buildInsertAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.Insert("users").
		Columns("username", "password_hash", "display_name", "name_color").
		Values(account.Username, account.PasswordHash, account.DisplayName, account.NameColor).
		Suffix("RETURNING user_id, created_at").
		ToSql()
}

func buildFindAccountByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(accountColumns...).
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildFindAccountByIDQuery(b sq.StatementBuilderType, accountID int64) (string, []any, error) {
	return b.Select(accountColumns...).
		From("users").
		Where(sq.Eq{"user_id": accountID}).
		ToSql()
}

// buildStrikeQuery produces the single atomic statement that both increments
// the failed-attempt counter and, exactly when the incremented value reaches
// threshold, arms the lockout. Every SET expression sees the pre-update row,
// so concurrent strikes serialize on the row and no increment can be lost.
func buildStrikeQuery(b sq.StatementBuilderType, accountID int64, threshold int, lockUntil time.Time) (string, []any, error) {
	return b.Update("users").
		Set("failed_attempts", sq.Expr("failed_attempts + 1")).
		Set("lock_until", sq.Expr("CASE WHEN failed_attempts + 1 >= ? THEN ? ELSE lock_until END", threshold, lockUntil)).
		Where(sq.Eq{"user_id": accountID}).
		Suffix("RETURNING failed_attempts, lock_until").
		ToSql()
}

func buildResetSecurityStateQuery(b sq.StatementBuilderType, accountID int64) (string, []any, error) {
	return b.Update("users").
		Set("failed_attempts", 0).
		Set("lock_until", nil).
		Where(sq.Eq{"user_id": accountID}).
		ToSql()
}

func buildUpdatePasswordHashQuery(b sq.StatementBuilderType, accountID int64, newHash string, changedAt time.Time) (string, []any, error) {
	return b.Update("users").
		Set("password_hash", newHash).
		Set("password_changed_at", changedAt).
		Where(sq.Eq{"user_id": accountID}).
		ToSql()
}

func buildFeedQuery(b sq.StatementBuilderType, filter models.FeedFilter) (string, []any, error) {
	query := b.Select(commentColumns...).
		From("comments").
		OrderBy("comment_id DESC")

	if filter.AccountID != 0 {
		query = query.Where(sq.Eq{"user_id": filter.AccountID})
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultFeedLimit
	}
	query = query.Limit(limit)

	if filter.Offset != 0 {
		query = query.Offset(filter.Offset)
	}

	return query.ToSql()
}
