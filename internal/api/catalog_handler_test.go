package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalog(t *testing.T) {
	h, err := NewCatalogHandler(nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	h.GetCatalog(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	catalog := body["description"]
	require.NotEmpty(t, catalog)

	// Every routed operation must be described.
	for _, endpoint := range []string{
		"GET /api",
		"GET /api/topics",
		"GET /api/articles",
		"POST /api/articles",
		"GET /api/articles/:article_id",
		"PATCH /api/articles/:article_id",
		"GET /api/articles/:article_id/comments",
		"POST /api/articles/:article_id/comments",
		"PATCH /api/comments/:comment_id",
		"DELETE /api/comments/:comment_id",
		"GET /api/users",
		"GET /api/users/:username",
	} {
		assert.Contains(t, catalog, endpoint)
	}
}
