package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	// Create a temporary directory for the test database
	tempDir, err := os.MkdirTemp("", "typebank-test-*")
	require.NoError(t, err)

	// Create store in temp directory
	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	// Return cleanup function
	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

// mustInsert stores one sentence through the normal write path.
func mustInsert(t *testing.T, store *Store, text string, difficulty domain.Difficulty) int64 {
	t.Helper()
	ctx := context.Background()
	id, err := store.SentenceStore().Insert(ctx, &domain.Sentence{
		Text:       text,
		Difficulty: difficulty,
		Category:   domain.DefaultCategory,
		Source:     domain.SourceManual,
	})
	require.NoError(t, err)
	require.Positive(t, id)
	return id
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	// Test with invalid path (should fail to create directory)
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "typebank-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Verify database file was created
	dbPath := filepath.Join(tempDir, "sentences.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)

	// Verify database connection is working
	err = store.db.Ping()
	assert.NoError(t, err)
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "typebank-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	// Create store in a nested directory that doesn't exist yet
	nestedDir := filepath.Join(tempDir, "nested", "path", "to", "db")
	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Verify all directories were created
	assert.DirExists(t, nestedDir)
}

func TestNewStore_Migrations(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	// Verify schema_migrations recorded every migration
	var count int
	err := store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "both migrations should be recorded")

	// Verify expected tables exist
	for _, table := range []string{"sentences", "sentences_fts"} {
		var tableExists int
		err := store.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&tableExists)
		require.NoError(t, err)
		assert.Equal(t, 1, tableExists, "table %s should exist", table)
	}

	// Verify the source column from migration 002 is present
	_, err = store.db.Exec("SELECT source FROM sentences LIMIT 1")
	assert.NoError(t, err)
}

func TestNewStore_Reopen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "typebank-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	id := mustInsert(t, store, "persistence check", domain.DifficultyEasy)
	require.NoError(t, store.Close())

	// Reopening must not re-apply migrations or disturb data
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	var count int
	err = store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := store.SentenceStore().Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "persistence check", got.Text)
}

func TestNewStore_RepairsDivergedIndex(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "typebank-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	mustInsert(t, store, "the quick brown fox", domain.DifficultyEasy)

	// Force divergence: a content row written behind the index's back.
	_, err = store.db.Exec(
		"INSERT INTO sentences (text, difficulty, category, source) VALUES ('orphan row', 'easy', 'general', '')")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Startup verification must detect the mismatch and rebuild
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	status, err := store.IndexAdmin().IndexStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.InSync)
	assert.Equal(t, int64(2), status.ContentRows)
	assert.Equal(t, int64(2), status.IndexRows)

	// The orphan row must now be searchable
	results, err := store.SentenceStore().SearchIndexed(context.Background(), []string{"orphan"}, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "orphan row", results[0].Text)
}

func TestNewStore_RepairsMissingIndexEntry(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "typebank-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	id := mustInsert(t, store, "drops out of the index", domain.DifficultyEasy)
	dropIndexEntry(t, store, id, "drops out of the index")
	require.NoError(t, store.Close())

	// The row survives but its index entry is gone; startup must notice
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	status, err := store.IndexAdmin().IndexStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.InSync)
	assert.Equal(t, int64(1), status.ContentRows)
	assert.Equal(t, int64(1), status.IndexRows)

	results, err := store.SentenceStore().SearchIndexed(context.Background(), []string{"drops"}, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, id, results[0].ID)
}

func TestNewStore_ForeignKeysEnabled(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	var fkEnabled int
	err := store.db.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled)
	require.NoError(t, err)
	assert.Equal(t, 1, fkEnabled, "foreign keys should be enabled")
}

func TestStore_Close(t *testing.T) {
	store, _ := setupTestStore(t)

	err := store.Close()
	assert.NoError(t, err)

	// Verify connection is closed
	err = store.db.Ping()
	assert.Error(t, err)
}

func TestStore_Path(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	path := store.Path()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "sentences.db")
	assert.FileExists(t, path)
}

func TestStore_InterfaceGetters(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.NotNil(t, store.SentenceStore())
	assert.NotNil(t, store.IndexAdmin())
}
