package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newshub/newshub/internal/domain"
)

func TestListTopics(t *testing.T) {
	t.Run("returns all topics", func(t *testing.T) {
		topics := &mockTopicStore{
			listFn: func(ctx context.Context) ([]domain.Topic, error) {
				return []domain.Topic{
					{Slug: "mitch", Description: "The man, the Mitch, the legend"},
					{Slug: "cats", Description: "Not dogs"},
				}, nil
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
		NewTopicHandler(topics, nil).ListTopics(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"topics":[
			{"slug":"mitch","description":"The man, the Mitch, the legend"},
			{"slug":"cats","description":"Not dogs"}
		]}`, rec.Body.String())
	})

	t.Run("empty table yields empty array", func(t *testing.T) {
		topics := &mockTopicStore{
			listFn: func(ctx context.Context) ([]domain.Topic, error) {
				return []domain.Topic{}, nil
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
		NewTopicHandler(topics, nil).ListTopics(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"topics":[]}`, rec.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		topics := &mockTopicStore{
			listFn: func(ctx context.Context) ([]domain.Topic, error) {
				return nil, errors.New("connection refused")
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
		NewTopicHandler(topics, nil).ListTopics(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", decodeErrorBody(t, rec).Msg)
	})
}
