package postgres

import (
	"context"
	"log/slog"

	"github.com/newshub/newshub/internal/domain"
	"github.com/newshub/newshub/internal/store"
)

// TopicStore implements the store.TopicStore interface using a PostgreSQL
// database as the storage backend.
type TopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTopicStore creates a new PostgreSQL implementation of the TopicStore
// interface. If logger is nil, a default logger will be used.
func NewTopicStore(db store.DBTX, log *slog.Logger) *TopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &TopicStore{
		db:     db,
		logger: log.With(slog.String("component", "topic_store")),
	}
}

// Ensure TopicStore implements store.TopicStore
var _ store.TopicStore = (*TopicStore)(nil)

// List implements store.TopicStore.List
func (s *TopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, description FROM topics`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	topics := []domain.Topic{}
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, MapError(err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return topics, nil
}

// Exists implements store.TopicStore.Exists
func (s *TopicStore) Exists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}
