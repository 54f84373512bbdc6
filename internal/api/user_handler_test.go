package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newshub/newshub/internal/domain"
)

func newUserTestRouter(svc *mockUserService) *chi.Mux {
	h := NewUserHandler(svc, nil)
	r := chi.NewRouter()
	r.Get("/api/users", h.ListUsers)
	r.Get("/api/users/{username}", h.GetUser)
	return r
}

func TestListUsers(t *testing.T) {
	t.Run("returns all users", func(t *testing.T) {
		svc := &mockUserService{
			listFn: func(ctx context.Context) ([]domain.User, error) {
				return []domain.User{
					{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/b.jpg"},
					{Username: "icellusedkars", Name: "sam", AvatarURL: "https://example.com/i.jpg"},
				}, nil
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		newUserTestRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string][]map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body["users"], 2)
		assert.Equal(t, "butter_bridge", body["users"][0]["username"])
		assert.Equal(t, "https://example.com/b.jpg", body["users"][0]["avatar_url"])
	})

	t.Run("storage failure", func(t *testing.T) {
		svc := &mockUserService{
			listFn: func(ctx context.Context) ([]domain.User, error) {
				return nil, errors.New("connection reset")
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		newUserTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", decodeErrorBody(t, rec).Msg)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("returns single user", func(t *testing.T) {
		svc := &mockUserService{
			getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
				assert.Equal(t, "butter_bridge", username)
				return &domain.User{Username: "butter_bridge", Name: "jonny"}, nil
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/butter_bridge", nil)
		newUserTestRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "jonny", body["user"]["name"])
	})

	t.Run("unknown username", func(t *testing.T) {
		svc := &mockUserService{
			getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
				return nil, domain.ErrUsernameNotFound
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil)
		newUserTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Username not found", decodeErrorBody(t, rec).Msg)
	})
}
