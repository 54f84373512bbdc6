package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/newshub/newshub/internal/store"
)

func TestMapError(t *testing.T) {
	opaque := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "nil passes through",
			in:   nil,
			want: nil,
		},
		{
			name: "no rows becomes not found",
			in:   sql.ErrNoRows,
			want: store.ErrNotFound,
		},
		{
			name: "wrapped no rows becomes not found",
			in:   fmt.Errorf("scan: %w", sql.ErrNoRows),
			want: store.ErrNotFound,
		},
		{
			name: "foreign key violation becomes referential violation",
			in:   &pgconn.PgError{Code: "23503", ConstraintName: "comments_author_fkey"},
			want: store.ErrReferentialViolation,
		},
		{
			name: "invalid text representation becomes malformed input",
			in:   &pgconn.PgError{Code: "22P02"},
			want: store.ErrMalformedInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}

	t.Run("unrecognized errors pass through unchanged", func(t *testing.T) {
		assert.Equal(t, opaque, MapError(opaque))
	})

	t.Run("other pg codes are not claimed", func(t *testing.T) {
		err := MapError(&pgconn.PgError{Code: "23505"})
		assert.NotErrorIs(t, err, store.ErrReferentialViolation)
		assert.NotErrorIs(t, err, store.ErrMalformedInput)
	})
}

func TestErrorPredicates(t *testing.T) {
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsInvalidTextRepresentation(fk))

	malformed := fmt.Errorf("query: %w", &pgconn.PgError{Code: "22P02"})
	assert.True(t, IsInvalidTextRepresentation(malformed))
	assert.False(t, IsForeignKeyViolation(malformed))

	assert.False(t, IsForeignKeyViolation(errors.New("plain")))
}
