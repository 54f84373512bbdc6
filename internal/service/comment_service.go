package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/newshub/newshub/internal/domain"
	"github.com/newshub/newshub/internal/store"
)

// CommentService resolves comment requests into store operations and
// domain outcomes.
type CommentService interface {
	// ListByArticle returns all comments for an article, newest first.
	// Returns domain.ErrArticleNotFound if the article does not exist,
	// even when the comment query itself succeeds; an existing article
	// with no comments returns an empty slice.
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)

	// Create attaches a new comment to an existing article. Returns
	// domain.ErrArticleNotFound if the article does not exist; an
	// unknown author surfaces as the store's referential violation.
	Create(ctx context.Context, articleID int64, author, body string) (*domain.Comment, error)

	// UpdateVotes applies a vote delta to a comment and returns the
	// updated row. Returns domain.ErrCommentNotFound if the id matches
	// no comment.
	UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error)

	// Delete removes exactly one comment. Returns
	// domain.ErrCommentNotFound if the id matches no comment.
	Delete(ctx context.Context, id int64) error
}

type commentService struct {
	comments store.CommentStore
	articles store.ArticleStore
	logger   *slog.Logger
}

// NewCommentService creates a CommentService backed by the given stores.
// If logger is nil, a default logger will be used.
func NewCommentService(comments store.CommentStore, articles store.ArticleStore, log *slog.Logger) CommentService {
	if log == nil {
		log = slog.Default()
	}
	return &commentService{
		comments: comments,
		articles: articles,
		logger:   log.With(slog.String("component", "comment_service")),
	}
}

func (s *commentService) ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	// The existence check and the child list are independent reads, so
	// they run as one concurrent batch. The decision waits for both:
	// existence wins over the list result regardless of which query
	// finishes first, so timing can never turn a missing article into
	// an empty 200.
	var (
		exists   bool
		comments []domain.Comment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		exists, err = s.articles.Exists(gctx, articleID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = s.comments.ListByArticleID(gctx, articleID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !exists {
		return nil, domain.ErrArticleNotFound
	}
	return comments, nil
}

func (s *commentService) Create(ctx context.Context, articleID int64, author, body string) (*domain.Comment, error) {
	exists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrArticleNotFound
	}

	return s.comments.Create(ctx, articleID, author, body)
}

func (s *commentService) UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	comment, err := s.comments.IncrementVotes(ctx, id, delta)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id int64) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}
	return nil
}
