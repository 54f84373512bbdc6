package domain

// SortColumn is a validated article sort key. Only values produced by
// ParseSortColumn exist; raw client input never becomes a SortColumn.
// The storage layer maps these to fixed SQL identifiers through a closed
// lookup table, so a column name from the request can never reach query
// text, validated or not.
type SortColumn string

const (
	SortByArticleID SortColumn = "article_id"
	SortByTitle     SortColumn = "title"
	SortByAuthor    SortColumn = "author"
	SortByTopic     SortColumn = "topic"
	SortByCreatedAt SortColumn = "created_at"
	SortByVotes     SortColumn = "votes"
)

// SortOrder is a validated sort direction.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ParseSortColumn validates a raw sort_by value against the allow-list.
// An empty value selects the default, created_at. Body text and the image
// URL are intentionally absent even though the columns exist.
func ParseSortColumn(raw string) (SortColumn, error) {
	if raw == "" {
		return SortByCreatedAt, nil
	}
	switch SortColumn(raw) {
	case SortByArticleID, SortByTitle, SortByAuthor, SortByTopic, SortByCreatedAt, SortByVotes:
		return SortColumn(raw), nil
	}
	return "", ErrInvalidSortBy
}

// ParseSortOrder validates a raw order_by value. The check is
// case-sensitive: "ASC" is rejected. An empty value selects the default,
// descending.
func ParseSortOrder(raw string) (SortOrder, error) {
	if raw == "" {
		return SortDescending, nil
	}
	switch SortOrder(raw) {
	case SortAscending, SortDescending:
		return SortOrder(raw), nil
	}
	return "", ErrInvalidOrderBy
}
