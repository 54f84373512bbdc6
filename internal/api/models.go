package api

import "github.com/newshub/newshub/internal/domain"

// Response DTOs. List and detail views project different fields from the
// same entity: article listings never carry the full body, the single
// fetch does, and vote updates echo the stored row without the derived
// comment count.

// ArticleResponse is the single-article projection, body included.
type ArticleResponse struct {
	ArticleID     int64            `json:"article_id"`
	Title         string           `json:"title"`
	Topic         string           `json:"topic"`
	Author        string           `json:"author"`
	Body          string           `json:"body"`
	CreatedAt     domain.Timestamp `json:"created_at"`
	Votes         int              `json:"votes"`
	ArticleImgURL string           `json:"article_img_url"`
	CommentCount  int              `json:"comment_count"`
}

// ArticleListItem is the listing projection: every article column except
// the body, plus the computed comment count.
type ArticleListItem struct {
	ArticleID     int64            `json:"article_id"`
	Title         string           `json:"title"`
	Topic         string           `json:"topic"`
	Author        string           `json:"author"`
	CreatedAt     domain.Timestamp `json:"created_at"`
	Votes         int              `json:"votes"`
	ArticleImgURL string           `json:"article_img_url"`
	CommentCount  int              `json:"comment_count"`
}

// UpdatedArticleResponse mirrors the stored row after a vote update. The
// comment count is not recomputed for mutations.
type UpdatedArticleResponse struct {
	ArticleID     int64            `json:"article_id"`
	Title         string           `json:"title"`
	Topic         string           `json:"topic"`
	Author        string           `json:"author"`
	Body          string           `json:"body"`
	CreatedAt     domain.Timestamp `json:"created_at"`
	Votes         int              `json:"votes"`
	ArticleImgURL string           `json:"article_img_url"`
}

func articleToResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ArticleID:     a.ArticleID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		Body:          a.Body,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}

func articleToListItem(a domain.Article) ArticleListItem {
	return ArticleListItem{
		ArticleID:     a.ArticleID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}

func articleToUpdatedResponse(a *domain.Article) UpdatedArticleResponse {
	return UpdatedArticleResponse{
		ArticleID:     a.ArticleID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		Body:          a.Body,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
	}
}

// Request DTOs. Validation failures on these are rejected before any
// storage call is attempted.

// CreateCommentRequest is the body for POST /api/articles/{id}/comments.
type CreateCommentRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Body     string `json:"body"     validate:"required,min=1"`
}

// CreateArticleRequest is the body for POST /api/articles.
type CreateArticleRequest struct {
	Author        string `json:"author" validate:"required,min=1"`
	Title         string `json:"title"  validate:"required,min=1"`
	Body          string `json:"body"   validate:"required,min=1"`
	Topic         string `json:"topic"  validate:"required,min=1"`
	ArticleImgURL string `json:"article_img_url"`
}

// UpdateVotesRequest is the body for the vote PATCH endpoints. IncVotes
// is a pointer so an absent field and a literal zero are both caught; a
// zero-vote edit is deliberately rejected, not silently accepted.
type UpdateVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}
