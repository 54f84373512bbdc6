// Package store defines the persistence interfaces consumed by the
// resolvers, the sentinel errors shared by all implementations, and the
// DBTX abstraction over database connections and transactions.
package store
