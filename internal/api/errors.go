package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/newshub/newshub/internal/api/shared"
	"github.com/newshub/newshub/internal/domain"
	"github.com/newshub/newshub/internal/store"
)

// classification is a terminal HTTP outcome for a failure.
type classification struct {
	status int
	msg    string
}

// classifier inspects a failure and either claims it with a terminal
// classification or passes it on.
type classifier func(err error) (classification, bool)

// classifiers is the ordered chain. Evaluation is first-match-wins; the
// order matters because the referential-integrity signal must be claimed
// before anything that would answer a generic 400.
var classifiers = []classifier{
	classifyReferentialViolation,
	classifyMalformedInput,
	classifyRequestError,
}

// classifyReferentialViolation matches the storage layer's foreign key
// violation signal: a write referenced a user that does not exist.
func classifyReferentialViolation(err error) (classification, bool) {
	if errors.Is(err, store.ErrReferentialViolation) {
		return classification{status: http.StatusBadRequest, msg: "Incorrect username"}, true
	}
	return classification{}, false
}

// classifyMalformedInput matches the storage layer's type-violation
// signal, e.g. a non-numeric value bound to an integer column.
func classifyMalformedInput(err error) (classification, bool) {
	if errors.Is(err, store.ErrMalformedInput) {
		return classification{status: http.StatusBadRequest, msg: "Bad request"}, true
	}
	return classification{}, false
}

// classifyRequestError matches failures raised with an explicit status
// and message, which are emitted verbatim.
func classifyRequestError(err error) (classification, bool) {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		return classification{status: reqErr.Status, msg: reqErr.Msg}, true
	}
	return classification{}, false
}

// HandleError runs the failure through the classifier chain and writes
// the terminal response. Anything unclaimed is logged and answered with a
// generic 500; internal error details never reach the client.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	for _, classify := range classifiers {
		if c, ok := classify(err); ok {
			shared.RespondWithError(w, r, c.status, c.msg)
			return
		}
	}

	slog.Error("unclassified error",
		slog.String("error", err.Error()),
		slog.String("trace_id", shared.GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))
	shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
}
