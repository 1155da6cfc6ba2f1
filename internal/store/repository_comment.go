package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/models"
)

// commentRepository is the SQL-backed implementation of [CommentRepository].
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment and returns it with server-assigned
// fields (CommentID) populated. AuthorName must already carry the author's
// current display name; the repository does not resolve it.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	query, args, err := r.db.stmt().
		Insert("comments").
		Columns("user_id", "author_name", "content", "created_at").
		Values(comment.AccountID, comment.AuthorName, comment.Content, comment.CreatedAt).
		Suffix("RETURNING comment_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error building insert query")
		return models.Comment{}, fmt.Errorf("error building insert query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&comment.CommentID); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error inserting comment")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return comment, nil
}

// ListComments returns a newest-first page of the feed described by filter.
func (r *commentRepository) ListComments(ctx context.Context, filter models.FeedFilter) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFeedQuery(r.db.stmt(), filter)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error building feed query")
		return nil, fmt.Errorf("error building feed query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error executing feed query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.CommentID,
			&comment.AccountID,
			&comment.AuthorName,
			&comment.Content,
			&comment.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error scanning comment row")
			return nil, fmt.Errorf("failed to scan comment rows: %w", err)
		}

		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return comments, nil
}
