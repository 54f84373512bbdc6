package api

import (
	"log/slog"
	"net/http"

	"github.com/newshub/newshub/internal/api/shared"
	"github.com/newshub/newshub/internal/domain"
	"github.com/newshub/newshub/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	comments service.CommentService
	logger   *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentService, log *slog.Logger) *CommentHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CommentHandler{
		comments: comments,
		logger:   log.With(slog.String("component", "comment_handler")),
	}
}

// ListArticleComments handles GET /api/articles/{article_id}/comments.
func (h *CommentHandler) ListArticleComments(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathID(r, "article_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	comments, err := h.comments.ListByArticle(r.Context(), articleID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string][]domain.Comment{"comments": comments})
}

// CreateComment handles POST /api/articles/{article_id}/comments.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathID(r, "article_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleError(w, r, domain.ErrBadRequest)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleError(w, r, domain.ErrBadRequest)
		return
	}

	comment, err := h.comments.Create(r.Context(), articleID, req.Username, req.Body)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]*domain.Comment{"newComment": comment})
}

// UpdateCommentVotes handles PATCH /api/comments/{comment_id}.
func (h *CommentHandler) UpdateCommentVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "comment_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	delta, err := getVoteDelta(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	comment, err := h.comments.UpdateVotes(r.Context(), id, delta)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]*domain.Comment{"updatedComment": comment})
}

// DeleteComment handles DELETE /api/comments/{comment_id}.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "comment_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
