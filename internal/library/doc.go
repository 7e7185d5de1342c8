// Package library persists imported track records in SQLite.
//
// The Store manages database connections, schema initialization, existence
// checks by path, and atomic album insertion: every record produced from one
// sidecar file lands in a single transaction, so a failed import never
// leaves a partial album behind. An imports journal records each run.
//
// A file lock beside the database serializes importers; the database itself
// is the long-term library, so schema changes bump the version in schema.go.
package library
