// Package history persists an append-only journal of CLI lookups in SQLite.
//
// Each entry records the correlation ID, the query and formatted search term,
// the outcome kind, and the rendered response. The journal is for operators
// reviewing past lookups; the resolver never reads it back.
package history
