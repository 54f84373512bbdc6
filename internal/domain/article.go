package domain

// Article is a posted story. Votes may go negative; no floor is enforced.
// CommentCount is derived at read time from the live comment rows and is
// never stored.
type Article struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     Timestamp `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// NewArticle holds the caller-supplied fields for article creation.
// ArticleImgURL is optional; storage applies a default when it is empty.
type NewArticle struct {
	Author        string
	Title         string
	Body          string
	Topic         string
	ArticleImgURL string
}

// ArticleFilter is a normalized article listing request. Topic is empty
// when no filter was supplied; SortBy and Order have already passed the
// allow-list checks.
type ArticleFilter struct {
	Topic  string
	SortBy SortColumn
	Order  SortOrder
}
