package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/newshub/newshub/internal/domain"
	"github.com/newshub/newshub/internal/platform/logger"
	"github.com/newshub/newshub/internal/store"
)

// CommentStore implements the store.CommentStore interface using a
// PostgreSQL database as the storage backend.
type CommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface. If logger is nil, a default logger will be used.
func NewCommentStore(db store.DBTX, log *slog.Logger) *CommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &CommentStore{
		db:     db,
		logger: log.With(slog.String("component", "comment_store")),
	}
}

// Ensure CommentStore implements store.CommentStore
var _ store.CommentStore = (*CommentStore)(nil)

// ListByArticleID implements store.CommentStore.ListByArticleID
// Comments come back newest first. Ties on created_at keep the storage
// engine's natural row order; no secondary sort key is introduced.
func (s *CommentStore) ListByArticleID(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	query := `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		var createdAt time.Time
		if err := rows.Scan(
			&c.CommentID,
			&c.ArticleID,
			&c.Author,
			&c.Body,
			&c.Votes,
			&createdAt,
		); err != nil {
			return nil, MapError(err)
		}
		c.CreatedAt = domain.NewTimestamp(createdAt)
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return comments, nil
}

// Create implements store.CommentStore.Create
func (s *CommentStore) Create(ctx context.Context, articleID int64, author, body string) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO comments (body, author, article_id, votes)
		VALUES ($1, $2, $3, 0)
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var c domain.Comment
	var createdAt time.Time
	err := s.db.QueryRowContext(ctx, query, body, author, articleID).Scan(
		&c.CommentID,
		&c.ArticleID,
		&c.Author,
		&c.Body,
		&c.Votes,
		&createdAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("referential violation during comment creation",
				slog.String("author", author),
				slog.Int64("article_id", articleID))
		} else {
			log.Error("failed to create comment",
				slog.String("error", err.Error()),
				slog.Int64("article_id", articleID))
		}
		return nil, MapError(err)
	}
	c.CreatedAt = domain.NewTimestamp(createdAt)

	log.Info("comment created",
		slog.Int64("comment_id", c.CommentID),
		slog.Int64("article_id", c.ArticleID),
		slog.String("author", c.Author))
	return &c, nil
}

// IncrementVotes implements store.CommentStore.IncrementVotes
func (s *CommentStore) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var c domain.Comment
	var createdAt time.Time
	err := s.db.QueryRowContext(ctx, query, delta, id).Scan(
		&c.CommentID,
		&c.ArticleID,
		&c.Author,
		&c.Body,
		&c.Votes,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found for vote update", slog.Int64("comment_id", id))
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to update comment votes",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return nil, MapError(err)
	}
	c.CreatedAt = domain.NewTimestamp(createdAt)

	return &c, nil
}

// Delete implements store.CommentStore.Delete
// The affected-row count distinguishes "deleted" from "nothing matched".
func (s *CommentStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		log.Debug("comment not found for delete", slog.Int64("comment_id", id))
		return store.ErrCommentNotFound
	}

	log.Info("comment deleted", slog.Int64("comment_id", id))
	return nil
}
