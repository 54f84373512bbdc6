package domain

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayout is the wire form for every timestamp the API emits:
// UTC, millisecond precision, trailing Z. Keeping the precision fixed makes
// ordering by created_at stable across serialization.
const timestampLayout = "2006-01-02T15:04:05.000"

// Timestamp is a time.Time that serializes in a fixed, sortable ISO-8601
// form regardless of the precision the storage layer hands back.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t for deterministic JSON serialization.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(timestampLayout) + `Z"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts any RFC 3339 form
// so responses round-trip in tests and clients.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
