// Package storage persists tasks and recent searches in SQLite.
//
// The search engine never imports this package; it ranks whatever task
// slice it is handed. Storage exists so the MCP shell has a durable record
// store and a backing for the recent-search list.
//
// # Schema
//
// Two tables plus version tracking:
//
//	tasks            one row per task, tags encoded as a JSON array
//	recent_searches  saved query strings, capped at 20, recency = id order
//	schema_version   semver-ordered migration history
//
// # Drivers
//
// Two SQLite drivers are supported via build tags. The default build uses
// the pure Go modernc.org/sqlite driver; building with -tags sqlite_cgo
// selects github.com/mattn/go-sqlite3 instead. See build_purego.go and
// build_cgo.go.
//
// # Concurrency
//
// The connection pool is limited to a single connection; SQLite performs
// best with one writer, and the MCP shell serializes tool calls anyway.
// WAL mode is enabled so a reader never blocks the writer.
package storage
