package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "whole second gets fixed millisecond padding",
			in:   time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC),
			want: `"2020-07-09T20:11:00.000Z"`,
		},
		{
			name: "sub-millisecond precision is truncated",
			in:   time.Date(2020, 11, 3, 21, 0, 0, 123456789, time.UTC),
			want: `"2020-11-03T21:00:00.123Z"`,
		},
		{
			name: "non-UTC times are normalized to UTC",
			in:   time.Date(2020, 7, 9, 22, 11, 0, 0, time.FixedZone("CEST", 2*60*60)),
			want: `"2020-07-09T20:11:00.000Z"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(NewTimestamp(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	orig := NewTimestamp(time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC))

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var parsed Timestamp
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, orig.Equal(parsed.Time))
}

func TestTimestampUnmarshalRejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}
