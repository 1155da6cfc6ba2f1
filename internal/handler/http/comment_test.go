package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MoodyMakai/WebDevForum/internal/service"
	"github.com/MoodyMakai/WebDevForum/models"
)

func TestPostComment_Handler(t *testing.T) {
	h := newTestHandler(t)

	var gotContent string
	h.services.CommentService = &mockCommentSvc{
		postCommentFn: func(_ context.Context, accountID int64, content string) (models.Comment, error) {
			gotContent = content
			return models.Comment{CommentID: 42, AccountID: accountID, Content: content}, nil
		},
	}

	req := newJSONRequest(t, http.MethodPost, "/api/comment", `{"content":"hello feed"}`)
	req = req.WithContext(ctxWithAccount(7))
	rr := httptest.NewRecorder()

	h.postComment(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "hello feed", gotContent)
	assert.Contains(t, rr.Body.String(), `"comment_id":42`)
}

func TestPostComment_Empty(t *testing.T) {
	h := newTestHandler(t)
	h.services.CommentService = &mockCommentSvc{
		postCommentFn: func(_ context.Context, _ int64, _ string) (models.Comment, error) {
			return models.Comment{}, service.ErrEmptyComment
		},
	}

	req := newJSONRequest(t, http.MethodPost, "/api/comment", `{"content":""}`)
	req = req.WithContext(ctxWithAccount(7))
	rr := httptest.NewRecorder()

	h.postComment(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetFeed_Handler(t *testing.T) {
	h := newTestHandler(t)

	var gotFilter models.FeedFilter
	h.services.CommentService = &mockCommentSvc{
		listFeedFn: func(_ context.Context, filter models.FeedFilter) ([]models.Comment, error) {
			gotFilter = filter
			return []models.Comment{{CommentID: 1, AuthorName: "Alice the 1st", Content: "hi"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/feed?author=7&limit=10&offset=20", nil)
	req = req.WithContext(ctxWithAccount(7))
	rr := httptest.NewRecorder()

	h.getFeed(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.FeedFilter{AccountID: 7, Limit: 10, Offset: 20}, gotFilter)
	assert.Contains(t, rr.Body.String(), `"author_name":"Alice the 1st"`)
}

func TestGetFeed_BadQuery(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/feed?limit=abc", nil)
	req = req.WithContext(ctxWithAccount(7))
	rr := httptest.NewRecorder()

	h.getFeed(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()

	h.getServerVersion(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "test-version", rr.Body.String())
}
