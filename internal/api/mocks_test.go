package api

import (
	"context"

	"github.com/newshub/newshub/internal/domain"
)

// Function-field mocks for the resolver interfaces. Tests set only the
// functions a handler is expected to call; hitting an unset function
// panics and fails the test loudly.

type mockArticleService struct {
	listFn        func(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	getFn         func(ctx context.Context, id int64) (*domain.Article, error)
	createFn      func(ctx context.Context, article domain.NewArticle) (*domain.Article, error)
	updateVotesFn func(ctx context.Context, id int64, delta int) (*domain.Article, error)
}

func (m *mockArticleService) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	return m.listFn(ctx, filter)
}

func (m *mockArticleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	return m.getFn(ctx, id)
}

func (m *mockArticleService) Create(ctx context.Context, article domain.NewArticle) (*domain.Article, error) {
	return m.createFn(ctx, article)
}

func (m *mockArticleService) UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	return m.updateVotesFn(ctx, id, delta)
}

type mockCommentService struct {
	listByArticleFn func(ctx context.Context, articleID int64) ([]domain.Comment, error)
	createFn        func(ctx context.Context, articleID int64, username, body string) (*domain.Comment, error)
	updateVotesFn   func(ctx context.Context, id int64, delta int) (*domain.Comment, error)
	deleteFn        func(ctx context.Context, id int64) error
}

func (m *mockCommentService) ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	return m.listByArticleFn(ctx, articleID)
}

func (m *mockCommentService) Create(ctx context.Context, articleID int64, username, body string) (*domain.Comment, error) {
	return m.createFn(ctx, articleID, username, body)
}

func (m *mockCommentService) UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	return m.updateVotesFn(ctx, id, delta)
}

func (m *mockCommentService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockUserService struct {
	listFn          func(ctx context.Context) ([]domain.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *mockUserService) List(ctx context.Context) ([]domain.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.getByUsernameFn(ctx, username)
}

type mockTopicStore struct {
	listFn   func(ctx context.Context) ([]domain.Topic, error)
	existsFn func(ctx context.Context, slug string) (bool, error)
}

func (m *mockTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	return m.listFn(ctx)
}

func (m *mockTopicStore) Exists(ctx context.Context, slug string) (bool, error) {
	return m.existsFn(ctx, slug)
}
