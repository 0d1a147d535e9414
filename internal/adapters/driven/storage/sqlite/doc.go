// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements the store interfaces
// through a single database connection:
//
//   - SentenceStore: Sentence bank persistence, sampling and search queries
//   - IndexAdmin: Maintenance operations on the derived FTS index
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// The search index is an FTS5 external-content table over sentences.text;
// it carries no triggers. Every mutating operation pairs the content write
// with the matching index write inside one transaction, and startup
// verification rebuilds the index if the two ever disagree.
//
// # Data Location
//
// By default, the database is stored at ~/.typebank/data/sentences.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
