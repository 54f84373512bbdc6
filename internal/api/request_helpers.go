package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/newshub/newshub/internal/api/shared"
	"github.com/newshub/newshub/internal/domain"
)

// getPathID extracts a numeric identifier from the URL path. Anything
// that is not a plain base-10 integer fails before any storage call.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrBadRequest
	}
	return id, nil
}

// getVoteDelta decodes and checks a vote-edit body. A missing, null or
// zero inc_votes is rejected.
func getVoteDelta(r *http.Request) (int, error) {
	var req UpdateVotesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return 0, domain.ErrBadRequest
	}
	if req.IncVotes == nil || *req.IncVotes == 0 {
		return 0, domain.ErrBadRequest
	}
	return *req.IncVotes, nil
}
