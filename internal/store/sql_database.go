package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/migrations"
)

// Dialect identifies the SQL backend a DB connection was opened against.
// The values double as goose dialect names.
type Dialect string

const (
	// DialectPostgres marks a connection opened through the pgx stdlib driver.
	DialectPostgres Dialect = "pgx"

	// DialectSQLite marks a connection opened through mattn/go-sqlite3.
	DialectSQLite Dialect = "sqlite3"
)

// DB wraps the raw database handle with the dialect it was opened against,
// so repositories can build queries with the right placeholder format and
// classify driver errors without caring which backend is in use.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// Migrate applies all embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Dialect returns the backend the connection was opened against.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// stmt returns a squirrel statement builder configured with the placeholder
// format of the connection's dialect ($1 for Postgres, ? for SQLite).
func (db *DB) stmt() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// isUniqueViolation reports whether err is the backend's unique-constraint
// violation. Repositories map it to [ErrUsernameTaken] on account creation.
func (db *DB) isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	switch db.dialect {
	case DialectPostgres:
		return isPostgresUniqueViolation(err)
	case DialectSQLite:
		return isSQLiteUniqueViolation(err)
	default:
		return false
	}
}
