// Package pg manages the PostgreSQL connection pool for the catalog store.
//
// It wraps pgxpool with retrying connection setup, a healthcheck suitable for
// readiness endpoints, goose-based schema migrations bridged through the pgx
// stdlib adapter, and error classification helpers used by the storage layer
// to translate driver errors into domain errors.
package pg
