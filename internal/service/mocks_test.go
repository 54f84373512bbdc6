package service

import (
	"context"

	"github.com/newshub/newshub/internal/domain"
)

// Function-field mocks for the store interfaces. Tests set only the
// fields they exercise.

type mockArticleStore struct {
	listFn           func(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	getByIDFn        func(ctx context.Context, id int64) (*domain.Article, error)
	existsFn         func(ctx context.Context, id int64) (bool, error)
	createFn         func(ctx context.Context, article domain.NewArticle) (*domain.Article, error)
	incrementVotesFn func(ctx context.Context, id int64, delta int) (*domain.Article, error)
}

func (m *mockArticleStore) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	return m.listFn(ctx, filter)
}

func (m *mockArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockArticleStore) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}

func (m *mockArticleStore) Create(ctx context.Context, article domain.NewArticle) (*domain.Article, error) {
	return m.createFn(ctx, article)
}

func (m *mockArticleStore) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	return m.incrementVotesFn(ctx, id, delta)
}

type mockCommentStore struct {
	listByArticleIDFn func(ctx context.Context, articleID int64) ([]domain.Comment, error)
	createFn          func(ctx context.Context, articleID int64, author, body string) (*domain.Comment, error)
	incrementVotesFn  func(ctx context.Context, id int64, delta int) (*domain.Comment, error)
	deleteFn          func(ctx context.Context, id int64) error
}

func (m *mockCommentStore) ListByArticleID(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	return m.listByArticleIDFn(ctx, articleID)
}

func (m *mockCommentStore) Create(ctx context.Context, articleID int64, author, body string) (*domain.Comment, error) {
	return m.createFn(ctx, articleID, author, body)
}

func (m *mockCommentStore) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	return m.incrementVotesFn(ctx, id, delta)
}

func (m *mockCommentStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
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

type mockUserStore struct {
	listFn          func(ctx context.Context) ([]domain.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *mockUserStore) List(ctx context.Context) ([]domain.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.getByUsernameFn(ctx, username)
}
