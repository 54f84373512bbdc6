package store

import (
	"context"

	"github.com/newshub/newshub/internal/domain"
)

// TopicStore defines the interface for topic data access.
type TopicStore interface {
	// List retrieves all topics. An empty database yields an empty
	// slice, not an error.
	List(ctx context.Context) ([]domain.Topic, error)

	// Exists reports whether a topic with the given slug exists.
	Exists(ctx context.Context, slug string) (bool, error)
}
