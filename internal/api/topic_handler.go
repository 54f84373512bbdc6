package api

import (
	"log/slog"
	"net/http"

	"github.com/newshub/newshub/internal/api/shared"
	"github.com/newshub/newshub/internal/domain"
	"github.com/newshub/newshub/internal/store"
)

// TopicHandler handles topic-related HTTP requests.
type TopicHandler struct {
	topics store.TopicStore
	logger *slog.Logger
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(topics store.TopicStore, log *slog.Logger) *TopicHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TopicHandler{
		topics: topics,
		logger: log.With(slog.String("component", "topic_handler")),
	}
}

// ListTopics handles GET /api/topics requests.
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string][]domain.Topic{"topics": topics})
}
