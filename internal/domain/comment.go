package domain

// Comment is a reply attached to an article. Author references a user by
// username; storage enforces the relationship and creation fails with a
// referential-integrity signal when the author does not exist.
type Comment struct {
	CommentID int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt Timestamp `json:"created_at"`
}
