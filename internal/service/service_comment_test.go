package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MoodyMakai/WebDevForum/internal/feed"
	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/store/mocks"
	"github.com/MoodyMakai/WebDevForum/models"
)

func TestPostComment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	comments := mocks.NewMockCommentRepository(ctrl)
	accounts := mocks.NewMockAccountRepository(ctrl)

	accounts.EXPECT().
		FindAccountByID(gomock.Any(), int64(1)).
		Return(models.Account{AccountID: 1, Username: "alice", DisplayName: "Alice the 1st"}, nil)

	comments.EXPECT().
		CreateComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, comment models.Comment) (models.Comment, error) {
			// The author's display name is snapshotted into the row.
			assert.Equal(t, "Alice the 1st", comment.AuthorName)
			assert.Equal(t, "hello feed", comment.Content)

			comment.CommentID = 42
			return comment, nil
		})

	svc := NewCommentService(comments, accounts, feed.NewHub(logger.Nop()), logger.Nop())

	comment, err := svc.PostComment(context.Background(), 1, "  hello feed  ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), comment.CommentID)
}

func TestPostComment_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	comments := mocks.NewMockCommentRepository(ctrl)
	accounts := mocks.NewMockAccountRepository(ctrl)

	svc := NewCommentService(comments, accounts, nil, logger.Nop())
	ctx := context.Background()

	_, err := svc.PostComment(ctx, 1, "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)

	_, err = svc.PostComment(ctx, 1, strings.Repeat("a", maxCommentLength+1))
	assert.ErrorIs(t, err, ErrCommentTooLong)
}

func TestPostComment_LengthCapIsInRunes(t *testing.T) {
	ctrl := gomock.NewController(t)
	comments := mocks.NewMockCommentRepository(ctrl)
	accounts := mocks.NewMockAccountRepository(ctrl)

	accounts.EXPECT().
		FindAccountByID(gomock.Any(), int64(1)).
		Return(models.Account{AccountID: 1, DisplayName: "Alice the 1st"}, nil)
	comments.EXPECT().
		CreateComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, comment models.Comment) (models.Comment, error) {
			return comment, nil
		})

	svc := NewCommentService(comments, accounts, nil, logger.Nop())

	// Multi-byte text at exactly the cap is accepted.
	_, err := svc.PostComment(context.Background(), 1, strings.Repeat("ы", maxCommentLength))
	require.NoError(t, err)
}

func TestListFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	comments := mocks.NewMockCommentRepository(ctrl)
	accounts := mocks.NewMockAccountRepository(ctrl)

	want := []models.Comment{
		{CommentID: 2, AuthorName: "Alice the 1st", Content: "second"},
		{CommentID: 1, AuthorName: "Bob the Builder", Content: "first"},
	}

	comments.EXPECT().
		ListComments(gomock.Any(), models.FeedFilter{AccountID: 0, Limit: 10}).
		Return(want, nil)

	svc := NewCommentService(comments, accounts, nil, logger.Nop())

	got, err := svc.ListFeed(context.Background(), models.FeedFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
