package store

import (
	"context"

	"github.com/newshub/newshub/internal/domain"
)

// ArticleStore defines the interface for article data access.
type ArticleStore interface {
	// List retrieves articles matching the filter, each with its live
	// comment count. Articles with zero comments are included
	// (left-join semantics). Bodies are not fetched for listings.
	// Returns an empty slice when nothing matches.
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)

	// GetByID retrieves a single article including its body and live
	// comment count.
	// Returns ErrArticleNotFound if the article does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Article, error)

	// Exists reports whether an article with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts a new article and returns the stored row with its
	// generated id and timestamp. Votes start at zero.
	// Returns ErrReferentialViolation if the author or topic does not exist.
	Create(ctx context.Context, article domain.NewArticle) (*domain.Article, error)

	// IncrementVotes atomically applies a vote delta and returns the
	// updated row. Negative deltas are valid; the counter may go
	// negative.
	// Returns ErrArticleNotFound if the article does not exist.
	IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error)
}
