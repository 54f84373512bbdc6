package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations. The API
// layer's classifier chain branches on these with errors.Is; it never
// inspects error message text.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is the generic form of the entity-specific not
	// found errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrReferentialViolation is returned when a write would reference a
	// nonexistent related entity, e.g. a comment naming an unknown
	// author. It is mapped from the storage engine's foreign key
	// violation signal, never from message text.
	ErrReferentialViolation = errors.New("referential integrity violation")

	// ErrMalformedInput is returned when the storage engine rejects a
	// value for a column's type, e.g. a non-numeric value bound to an
	// integer column. It is mapped from the engine's type-violation
	// signal.
	ErrMalformedInput = errors.New("malformed value for column type")

	// Entity-specific "not found" errors

	// ErrArticleNotFound indicates that the requested article does not exist.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTopicNotFound indicates that the requested topic does not exist.
	ErrTopicNotFound = fmt.Errorf("%w: topic", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
