package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
)

// ==================== Index Admin ====================

// indexAdmin implements driven.IndexAdmin.
type indexAdmin struct {
	store *Store
}

var _ driven.IndexAdmin = (*indexAdmin)(nil)

// RebuildIndex drops and repopulates the search index from the
// sentence table in one pass, returning the indexed row count. This is
// the recovery path for suspected mid-session corruption; the same
// repair runs automatically at startup when the counts disagree.
func (a *indexAdmin) RebuildIndex(ctx context.Context) (int64, error) {
	if _, err := a.store.db.ExecContext(ctx,
		"INSERT INTO sentences_fts(sentences_fts) VALUES ('rebuild')"); err != nil {
		return 0, fmt.Errorf("rebuilding search index: %w", err)
	}

	var rows int64
	if err := a.store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sentences").Scan(&rows); err != nil {
		return 0, fmt.Errorf("counting sentences: %w", err)
	}
	return rows, nil
}

// IndexStatus compares content and index row counts.
func (a *indexAdmin) IndexStatus(ctx context.Context) (*domain.IndexStatus, error) {
	var status domain.IndexStatus
	if err := a.store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sentences").Scan(&status.ContentRows); err != nil {
		return nil, fmt.Errorf("counting sentences: %w", err)
	}
	indexRows, err := a.store.indexRowCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting index entries: %w", err)
	}
	status.IndexRows = indexRows
	status.InSync = status.ContentRows == status.IndexRows
	return &status, nil
}

// ProbeIndex checks live synchronisation: a throwaway sentence goes in
// through the normal paired write path and the index is queried for its
// unique token. The whole probe runs in a transaction that is always
// rolled back, so it leaves no trace even on failure.
func (a *indexAdmin) ProbeIndex(ctx context.Context) (bool, error) {
	tx, err := a.store.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Hyphens would split the token under the default tokenizer.
	token := "probe" + strings.ReplaceAll(uuid.NewString(), "-", "")
	probe := domain.Sentence{
		Text:       "index sync probe " + token,
		Difficulty: domain.DefaultDifficulty,
		Category:   domain.DefaultCategory,
		Source:     "probe",
	}
	if _, err := insertSentenceTx(ctx, tx, &probe); err != nil {
		return false, fmt.Errorf("writing probe sentence: %w", err)
	}

	var hits int64
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sentences_fts WHERE sentences_fts MATCH ?",
		`"`+token+`"`).Scan(&hits); err != nil {
		return false, fmt.Errorf("querying probe token: %w", err)
	}

	return hits == 1, nil
}
