package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MoodyMakai/WebDevForum/internal/config"
	"github.com/MoodyMakai/WebDevForum/internal/logger"
)

// Storages bundles every repository of the application together with the
// underlying connection, so the wiring code can pass one value around.
type Storages struct {
	Account AccountRepository
	Attempt AttemptRepository
	Comment CommentRepository

	DB *DB
}

// NewStorages opens the database selected by the DSN (a postgres:// URI
// picks the pgx backend, anything else is a SQLite file path), applies the
// embedded migrations, and constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		Account: NewAccountRepository(db, log),
		Attempt: NewAttemptRepository(db, log),
		Comment: NewCommentRepository(db, log),
		DB:      db,
	}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
