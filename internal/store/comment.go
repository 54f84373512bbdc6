package store

import (
	"context"

	"github.com/newshub/newshub/internal/domain"
)

// CommentStore defines the interface for comment data access.
type CommentStore interface {
	// ListByArticleID retrieves all comments for an article, newest
	// first. An article with no comments yields an empty slice; the
	// caller is responsible for confirming the article itself exists.
	ListByArticleID(ctx context.Context, articleID int64) ([]domain.Comment, error)

	// Create inserts a new comment with zero votes and returns the
	// stored row.
	// Returns ErrReferentialViolation if the author does not exist.
	Create(ctx context.Context, articleID int64, author, body string) (*domain.Comment, error)

	// IncrementVotes atomically applies a vote delta and returns the
	// updated row.
	// Returns ErrCommentNotFound if the comment does not exist.
	IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error)

	// Delete removes exactly the comment with the given id.
	// Returns ErrCommentNotFound if no row matched; deleting an absent
	// id is never a silent success.
	Delete(ctx context.Context, id int64) error
}
