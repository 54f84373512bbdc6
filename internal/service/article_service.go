package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/newshub/newshub/internal/domain"
	"github.com/newshub/newshub/internal/store"
)

// ArticleService resolves article requests into store operations and
// domain outcomes.
type ArticleService interface {
	// List returns articles matching the filter. A filter naming an
	// unknown topic fails with domain.ErrTopicNotExist; a known topic
	// with no articles returns an empty slice.
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)

	// Get returns a single article with its body and live comment count.
	// Returns domain.ErrArticleNotFound if the id matches no article.
	Get(ctx context.Context, id int64) (*domain.Article, error)

	// Create inserts a new article authored by an existing user under an
	// existing topic.
	Create(ctx context.Context, article domain.NewArticle) (*domain.Article, error)

	// UpdateVotes applies a vote delta to an article and returns the
	// updated row. Returns domain.ErrArticleNotFound if the id matches
	// no article.
	UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Article, error)
}

type articleService struct {
	articles store.ArticleStore
	topics   store.TopicStore
	logger   *slog.Logger
}

// NewArticleService creates an ArticleService backed by the given stores.
// If logger is nil, a default logger will be used.
func NewArticleService(articles store.ArticleStore, topics store.TopicStore, log *slog.Logger) ArticleService {
	if log == nil {
		log = slog.Default()
	}
	return &articleService{
		articles: articles,
		topics:   topics,
		logger:   log.With(slog.String("component", "article_service")),
	}
}

func (s *articleService) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	// A topic filter must name an existing topic. The filter value is
	// request input, not a resource identity, so an unknown topic is a
	// 400, unlike a missing article id.
	if filter.Topic != "" {
		exists, err := s.topics.Exists(ctx, filter.Topic)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrTopicNotExist
		}
	}

	return s.articles.List(ctx, filter)
}

func (s *articleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) Create(ctx context.Context, article domain.NewArticle) (*domain.Article, error) {
	// Referential failures (unknown author or topic) surface as the
	// store's integrity signal and are classified by the API layer.
	return s.articles.Create(ctx, article)
}

func (s *articleService) UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	article, err := s.articles.IncrementVotes(ctx, id, delta)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}
