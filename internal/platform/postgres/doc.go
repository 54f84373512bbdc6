// Package postgres provides PostgreSQL implementations of the store
// interfaces. All queries use positional bind parameters; the only
// identifiers ever interpolated into query text come from closed lookup
// tables keyed by validated sort enums.
package postgres
