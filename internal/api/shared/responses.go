package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse defines the standard error body. Every failure surfaced
// to a client carries exactly one msg field.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the standard {msg} error body with the given
// status code.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		slog.Int("status_code", status),
		slog.String("msg", msg),
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, ErrorResponse{Msg: msg})
}
