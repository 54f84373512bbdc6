package api

import (
	"log/slog"
	"net/http"

	"github.com/newshub/newshub/internal/api/shared"
	"github.com/newshub/newshub/internal/domain"
	"github.com/newshub/newshub/internal/service"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articles service.ArticleService
	logger   *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles service.ArticleService, log *slog.Logger) *ArticleHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ArticleHandler{
		articles: articles,
		logger:   log.With(slog.String("component", "article_handler")),
	}
}

// ListArticles handles GET /api/articles requests. The sort_by, order_by
// and topic query parameters are normalized here; nothing unvalidated
// reaches the resolver.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sortBy, err := domain.ParseSortColumn(q.Get("sort_by"))
	if err != nil {
		HandleError(w, r, err)
		return
	}
	order, err := domain.ParseSortOrder(q.Get("order_by"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	filter := domain.ArticleFilter{
		Topic:  q.Get("topic"),
		SortBy: sortBy,
		Order:  order,
	}

	articles, err := h.articles.List(r.Context(), filter)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	items := make([]ArticleListItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, articleToListItem(a))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string][]ArticleListItem{"articles": items})
}

// GetArticle handles GET /api/articles/{article_id} requests.
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	article, err := h.articles.Get(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]ArticleResponse{"article": articleToResponse(article)})
}

// CreateArticle handles POST /api/articles requests.
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req CreateArticleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleError(w, r, domain.ErrBadRequest)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleError(w, r, domain.ErrBadRequest)
		return
	}

	article, err := h.articles.Create(r.Context(), domain.NewArticle{
		Author:        req.Author,
		Title:         req.Title,
		Body:          req.Body,
		Topic:         req.Topic,
		ArticleImgURL: req.ArticleImgURL,
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]ArticleResponse{"newArticle": articleToResponse(article)})
}

// UpdateArticleVotes handles PATCH /api/articles/{article_id} requests.
func (h *ArticleHandler) UpdateArticleVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	delta, err := getVoteDelta(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	article, err := h.articles.UpdateVotes(r.Context(), id, delta)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]UpdatedArticleResponse{"updatedArticle": articleToUpdatedResponse(article)})
}
