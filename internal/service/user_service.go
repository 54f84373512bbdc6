package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/newshub/newshub/internal/domain"
	"github.com/newshub/newshub/internal/store"
)

// UserService resolves user requests into store operations and domain
// outcomes.
type UserService interface {
	// List returns all users.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername returns a single user. Returns
	// domain.ErrUsernameNotFound if the username matches no user.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type userService struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserService creates a UserService backed by the given store.
// If logger is nil, a default logger will be used.
func NewUserService(users store.UserStore, log *slog.Logger) UserService {
	if log == nil {
		log = slog.Default()
	}
	return &userService{
		users:  users,
		logger: log.With(slog.String("component", "user_service")),
	}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrUsernameNotFound
		}
		return nil, err
	}
	return user, nil
}
