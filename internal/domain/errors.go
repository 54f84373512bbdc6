package domain

import "net/http"

// RequestError is a failure carrying an explicit HTTP status and the exact
// client-facing message. Resolvers raise these where the outcome is domain
// policy (mostly 404s for absent resources and 400s for rejected filter
// values); the API error chain emits status and message verbatim.
type RequestError struct {
	Status int
	Msg    string
}

func (e *RequestError) Error() string { return e.Msg }

// NewRequestError builds a RequestError with the given status and message.
func NewRequestError(status int, msg string) *RequestError {
	return &RequestError{Status: status, Msg: msg}
}

// Canned request errors. The message strings are part of the HTTP contract
// and asserted on literally by clients, so they are defined once here.
var (
	// ErrBadRequest covers malformed identifiers and missing or invalid
	// body fields, rejected before any storage call.
	ErrBadRequest = &RequestError{Status: http.StatusBadRequest, Msg: "Bad request"}

	// ErrInvalidSortBy is returned for a sort_by value outside the
	// allow-list, including real columns that are deliberately unsortable.
	ErrInvalidSortBy = &RequestError{Status: http.StatusBadRequest, Msg: "invalid given sort_by"}

	// ErrInvalidOrderBy is returned for an order_by value other than the
	// case-sensitive asc/desc pair.
	ErrInvalidOrderBy = &RequestError{Status: http.StatusBadRequest, Msg: "invalid given order_by"}

	// ErrTopicNotExist is returned when the topic filter names an unknown
	// topic. This is a 400, not a 404: the filter value itself is the
	// malformed input, the request never identified a resource.
	ErrTopicNotExist = &RequestError{Status: http.StatusBadRequest, Msg: "Topic does not exist"}

	// ErrArticleNotFound is returned when an article id identifies no row.
	ErrArticleNotFound = &RequestError{Status: http.StatusNotFound, Msg: "Article id not found"}

	// ErrCommentNotFound is returned when a comment id identifies no row.
	ErrCommentNotFound = &RequestError{Status: http.StatusNotFound, Msg: "Comment id not found"}

	// ErrUsernameNotFound is returned when a username identifies no user.
	ErrUsernameNotFound = &RequestError{Status: http.StatusNotFound, Msg: "Username not found"}
)
