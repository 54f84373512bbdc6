package store

import (
	"context"

	"github.com/newshub/newshub/internal/domain"
)

// UserStore defines the interface for user data access.
type UserStore interface {
	// List retrieves all users.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
