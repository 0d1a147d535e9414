package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/typebank-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
	"github.com/custodia-labs/typebank-cli/internal/logger"
)

// Store is a unified SQLite-based storage that provides access to the
// sentence bank interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.typebank/data/sentences.db.
//
// Initialisation is idempotent: migrations apply once, and the derived
// search index is verified against the sentence table and rebuilt when
// the two disagree. Failures here are fatal to the caller; nothing
// works without storage.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".typebank", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "sentences.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	// Self-heal the derived search index
	if err := s.verifyIndex(); err != nil {
		db.Close()
		return nil, fmt.Errorf("verifying search index: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SentenceStore returns a SentenceStore interface backed by this store.
func (s *Store) SentenceStore() driven.SentenceStore {
	return &sentenceStore{store: s}
}

// IndexAdmin returns an IndexAdmin interface backed by this store.
func (s *Store) IndexAdmin() driven.IndexAdmin {
	return &indexAdmin{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// verifyIndex compares the sentence table against the derived search
// index and rebuilds the index when the row counts disagree. Divergence
// is repaired here silently from the caller's point of view; only the
// log distinguishes a healthy start from a repair.
func (s *Store) verifyIndex() error {
	var contentRows int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sentences").Scan(&contentRows); err != nil {
		return fmt.Errorf("counting sentences: %w", err)
	}

	indexRows, err := s.indexRowCount(context.Background())
	if err != nil {
		return fmt.Errorf("counting index entries: %w", err)
	}

	switch {
	case contentRows == 0 && indexRows == 0:
		logger.Info("Fresh install: empty sentence bank at %s", s.path)
	case contentRows == indexRows:
		logger.Debug("Search index in sync (%d rows)", contentRows)
	default:
		logger.Warn("Search index out of sync (content=%d, index=%d), rebuilding", contentRows, indexRows)
		if _, err := s.db.Exec("INSERT INTO sentences_fts(sentences_fts) VALUES('rebuild')"); err != nil {
			return fmt.Errorf("rebuilding search index: %w", err)
		}
		logger.Info("Search index repaired (%d rows)", contentRows)
	}

	return nil
}

// indexRowCount counts entries actually present in the search index.
// COUNT(*) against an external-content FTS5 table answers from the
// content table, which would make the two counts agree no matter what
// state the index is in. The docsize shadow table carries exactly one
// row per indexed document, so it is counted instead.
func (s *Store) indexRowCount(ctx context.Context) (int64, error) {
	var rows int64
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sentences_fts_docsize").Scan(&rows); err != nil {
		return 0, err
	}
	return rows, nil
}
