package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/models"
)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &accountRepository{
		db:     &DB{DB: db, dialect: DialectPostgres, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	account := models.Account{
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
		DisplayName:  "Alice the 1st",
		NameColor:    "#1F6FEB",
	}

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "created_at"}).
		AddRow(1, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(account.Username, account.PasswordHash, account.DisplayName, account.NameColor).
		WillReturnRows(rows)

	created, err := repo.CreateAccount(context.Background(), account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.AccountID != 1 {
		t.Errorf("expected AccountID=1, got %d", created.AccountID)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt=%v, got %v", now, created.CreatedAt)
	}
}

func TestCreateAccount_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAccount(context.Background(), models.Account{Username: "alice"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestFindAccountByUsername_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	now := time.Now()
	lockUntil := now.Add(15 * time.Minute)

	rows := sqlmock.NewRows(accountColumns).
		AddRow(1, "alice", "$2a$10$hash", "Alice the 1st", "#1F6FEB", 5, lockUntil, nil, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("alice").
		WillReturnRows(rows)

	account, err := repo.FindAccountByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.FailedAttempts != 5 {
		t.Errorf("expected FailedAttempts=5, got %d", account.FailedAttempts)
	}
	if !account.LockUntil.Equal(lockUntil) {
		t.Errorf("expected LockUntil=%v, got %v", lockUntil, account.LockUntil)
	}
	if !account.PasswordChangedAt.IsZero() {
		t.Errorf("expected zero PasswordChangedAt for NULL column, got %v", account.PasswordChangedAt)
	}
}

func TestFindAccountByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAccountByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrNoAccountFound) {
		t.Fatalf("expected ErrNoAccountFound, got %v", err)
	}
}

func TestIncrementFailedAttempts_BelowThreshold(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	lockUntil := time.Now().Add(15 * time.Minute)

	rows := sqlmock.NewRows([]string{"failed_attempts", "lock_until"}).
		AddRow(3, nil)

	mock.ExpectQuery("UPDATE users SET failed_attempts").
		WithArgs(5, lockUntil, int64(1)).
		WillReturnRows(rows)

	failed, lockedUntil, err := repo.IncrementFailedAttempts(context.Background(), 1, 5, lockUntil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if failed != 3 {
		t.Errorf("expected failed=3, got %d", failed)
	}
	if !lockedUntil.IsZero() {
		t.Errorf("expected zero lock time below threshold, got %v", lockedUntil)
	}
}

func TestIncrementFailedAttempts_ThresholdCrossed(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	lockUntil := time.Now().Add(15 * time.Minute)

	rows := sqlmock.NewRows([]string{"failed_attempts", "lock_until"}).
		AddRow(5, lockUntil)

	mock.ExpectQuery("UPDATE users SET failed_attempts").
		WithArgs(5, lockUntil, int64(1)).
		WillReturnRows(rows)

	failed, lockedUntil, err := repo.IncrementFailedAttempts(context.Background(), 1, 5, lockUntil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if failed != 5 {
		t.Errorf("expected failed=5, got %d", failed)
	}
	if !lockedUntil.Equal(lockUntil) {
		t.Errorf("expected lock time %v, got %v", lockUntil, lockedUntil)
	}
}

func TestIncrementFailedAttempts_UnknownAccount(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users SET failed_attempts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, _, err := repo.IncrementFailedAttempts(context.Background(), 404, 5, time.Now())
	if !errors.Is(err, ErrNoAccountFound) {
		t.Fatalf("expected ErrNoAccountFound, got %v", err)
	}
}

func TestResetSecurityState(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users SET failed_attempts").
		WithArgs(0, nil, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ResetSecurityState(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdatePasswordHash(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	changedAt := time.Now()

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("$2a$10$newhash", changedAt, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePasswordHash(context.Background(), 1, "$2a$10$newhash", changedAt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateDisplayName_TransactionalCascade(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users SET display_name").
		WithArgs("New Name", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE comments SET author_name").
		WithArgs("New Name", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	if err := repo.UpdateDisplayName(context.Background(), 1, "New Name"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateDisplayName_CascadeFailureRollsBack(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users SET display_name").
		WithArgs("New Name", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE comments SET author_name").
		WithArgs("New Name", int64(1)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if err := repo.UpdateDisplayName(context.Background(), 1, "New Name"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateColor(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users SET name_color").
		WithArgs("#AABBCC", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateColor(context.Background(), 1, "#AABBCC"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
