package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MoodyMakai/WebDevForum/internal/feed"
	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/store"
	"github.com/MoodyMakai/WebDevForum/models"
)

// maxCommentLength is the comment size cap in runes.
const maxCommentLength = 2000

// commentService is the concrete implementation of CommentService.
type commentService struct {
	commentRepository store.CommentRepository
	accountRepository store.AccountRepository
	hub               *feed.Hub
	logger            *logger.Logger
}

// NewCommentService constructs a CommentService. hub may be nil, in which
// case new comments are persisted without being broadcast.
func NewCommentService(commentRepository store.CommentRepository, accountRepository store.AccountRepository, hub *feed.Hub, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		accountRepository: accountRepository,
		hub:               hub,
		logger:            logger,
	}
}

// PostComment appends a comment to the shared feed. The author's current
// display name is snapshotted into the comment row; later display-name
// changes rewrite these snapshots via ProfileService. The persisted comment
// is broadcast to live feed subscribers.
func (c *commentService) PostComment(ctx context.Context, accountID int64, content string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	content = strings.TrimSpace(content)
	if content == "" {
		return models.Comment{}, ErrEmptyComment
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return models.Comment{}, ErrCommentTooLong
	}

	account, err := c.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("id", accountID).Msg("account lookup failed")
		return models.Comment{}, fmt.Errorf("account lookup failed: %w", err)
	}

	comment := models.Comment{
		AccountID:  accountID,
		AuthorName: account.DisplayName,
		Content:    content,
	}

	savedComment, err := c.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Int64("id", accountID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	if c.hub != nil {
		c.hub.Broadcast(savedComment)
	}

	log.Info().Int64("comment_id", savedComment.CommentID).Int64("id", accountID).Msg("comment posted")
	return savedComment, nil
}

// ListFeed returns comments newest first, optionally filtered by author.
func (c *commentService) ListFeed(ctx context.Context, filter models.FeedFilter) ([]models.Comment, error) {
	comments, err := c.commentRepository.ListComments(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("feed listing ended with error")
		return nil, fmt.Errorf("feed listing ended with error: %w", err)
	}

	return comments, nil
}
