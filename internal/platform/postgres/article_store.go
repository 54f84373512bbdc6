package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/newshub/newshub/internal/domain"
	"github.com/newshub/newshub/internal/platform/logger"
	"github.com/newshub/newshub/internal/store"
)

// defaultArticleImgURL is applied when article creation omits an image.
const defaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// sortColumns maps validated sort enums to fixed SQL identifiers. Raw
// request values never reach query text, even after validation; anything
// not in this table is a programming error, not a client error.
var sortColumns = map[domain.SortColumn]string{
	domain.SortByArticleID: "articles.article_id",
	domain.SortByTitle:     "articles.title",
	domain.SortByAuthor:    "articles.author",
	domain.SortByTopic:     "articles.topic",
	domain.SortByCreatedAt: "articles.created_at",
	domain.SortByVotes:     "articles.votes",
}

// sortDirections maps validated sort orders to SQL keywords.
var sortDirections = map[domain.SortOrder]string{
	domain.SortAscending:  "ASC",
	domain.SortDescending: "DESC",
}

// ArticleStore implements the store.ArticleStore interface using a
// PostgreSQL database as the storage backend.
type ArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewArticleStore creates a new PostgreSQL implementation of the
// ArticleStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// a default logger will be used.
func NewArticleStore(db store.DBTX, log *slog.Logger) *ArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ArticleStore{
		db:     db,
		logger: log.With(slog.String("component", "article_store")),
	}
}

// Ensure ArticleStore implements store.ArticleStore
var _ store.ArticleStore = (*ArticleStore)(nil)

// List implements store.ArticleStore.List
// A single query joins articles to comments (left join, so zero-comment
// articles survive) grouped per article. The topic predicate is appended
// only when a filter was supplied, always as a bind parameter.
func (s *ArticleStore) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	orderColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		return nil, fmt.Errorf("unmapped sort column %q", filter.SortBy)
	}
	orderDirection, ok := sortDirections[filter.Order]
	if !ok {
		return nil, fmt.Errorf("unmapped sort direction %q", filter.Order)
	}

	query := `
		SELECT articles.article_id, articles.title, articles.topic, articles.author,
		       articles.created_at, articles.votes, articles.article_img_url,
		       COUNT(comments.comment_id)::int AS comment_count
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id
	`
	var args []any
	if filter.Topic != "" {
		query += ` WHERE articles.topic = $1`
		args = append(args, filter.Topic)
	}
	query += ` GROUP BY articles.article_id ORDER BY ` + orderColumn + ` ` + orderDirection

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list articles",
			slog.String("error", err.Error()),
			slog.String("topic", filter.Topic))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	articles := []domain.Article{}
	for rows.Next() {
		var a domain.Article
		var createdAt time.Time
		if err := rows.Scan(
			&a.ArticleID,
			&a.Title,
			&a.Topic,
			&a.Author,
			&createdAt,
			&a.Votes,
			&a.ArticleImgURL,
			&a.CommentCount,
		); err != nil {
			return nil, MapError(err)
		}
		a.CreatedAt = domain.NewTimestamp(createdAt)
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("listed articles",
		slog.Int("count", len(articles)),
		slog.String("sort_by", string(filter.SortBy)),
		slog.String("order", string(filter.Order)))
	return articles, nil
}

// GetByID implements store.ArticleStore.GetByID
// Same join and group shape as List, filtered to one id and additionally
// projecting the full body.
func (s *ArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT articles.article_id, articles.title, articles.topic, articles.author,
		       articles.body, articles.created_at, articles.votes, articles.article_img_url,
		       COUNT(comments.comment_id)::int AS comment_count
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`

	var a domain.Article
	var createdAt time.Time
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ArticleID,
		&a.Title,
		&a.Topic,
		&a.Author,
		&a.Body,
		&createdAt,
		&a.Votes,
		&a.ArticleImgURL,
		&a.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found", slog.Int64("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to get article",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return nil, MapError(err)
	}
	a.CreatedAt = domain.NewTimestamp(createdAt)

	return &a, nil
}

// Exists implements store.ArticleStore.Exists
func (s *ArticleStore) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// Create implements store.ArticleStore.Create
func (s *ArticleStore) Create(ctx context.Context, article domain.NewArticle) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	imgURL := article.ArticleImgURL
	if imgURL == "" {
		imgURL = defaultArticleImgURL
	}

	query := `
		INSERT INTO articles (title, topic, author, body, article_img_url, votes)
		VALUES ($1, $2, $3, $4, $5, 0)
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`

	var a domain.Article
	var createdAt time.Time
	err := s.db.QueryRowContext(
		ctx,
		query,
		article.Title,
		article.Topic,
		article.Author,
		article.Body,
		imgURL,
	).Scan(
		&a.ArticleID,
		&a.Title,
		&a.Topic,
		&a.Author,
		&a.Body,
		&createdAt,
		&a.Votes,
		&a.ArticleImgURL,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("referential violation during article creation",
				slog.String("author", article.Author),
				slog.String("topic", article.Topic))
		} else {
			log.Error("failed to create article", slog.String("error", err.Error()))
		}
		return nil, MapError(err)
	}
	a.CreatedAt = domain.NewTimestamp(createdAt)

	log.Info("article created",
		slog.Int64("article_id", a.ArticleID),
		slog.String("author", a.Author),
		slog.String("topic", a.Topic))
	return &a, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes
// The delta is applied in the database, never read-modify-write in this
// layer, so concurrent increments on the same row cannot lose updates.
func (s *ArticleStore) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`

	var a domain.Article
	var createdAt time.Time
	err := s.db.QueryRowContext(ctx, query, delta, id).Scan(
		&a.ArticleID,
		&a.Title,
		&a.Topic,
		&a.Author,
		&a.Body,
		&createdAt,
		&a.Votes,
		&a.ArticleImgURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found for vote update", slog.Int64("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to update article votes",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return nil, MapError(err)
	}
	a.CreatedAt = domain.NewTimestamp(createdAt)

	return &a, nil
}
