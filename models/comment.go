package models

import "time"

// Comment is a single entry in the shared feed. Comments are append-only:
// they are never edited or deleted.
type Comment struct {
	// CommentID is the internal unique identifier of the comment.
	CommentID int64 `json:"comment_id"`

	// AccountID references the author.
	AccountID int64 `json:"account_id"`

	// AuthorName is the denormalized copy of the author's display name
	// at read time. It is rewritten whenever the author changes their
	// display name (propagate-on-write, no eviction).
	AuthorName string `json:"author_name"`

	// Content is the free-text body of the comment.
	Content string `json:"content"`

	// CreatedAt is the insertion timestamp; the feed is ordered by it.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// FeedFilter narrows and pages a feed listing.
type FeedFilter struct {
	// AccountID, when non-zero, restricts the feed to one author.
	AccountID int64

	// Limit caps the number of returned comments. Zero means the
	// server default.
	Limit uint64

	// Offset skips that many newest comments.
	Offset uint64
}
