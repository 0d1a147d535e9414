package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
)

// ==================== Sentence Store ====================

// sentenceStore implements driven.SentenceStore.
//
// Every content mutation pairs with the matching index mutation inside
// one transaction. The FTS table is external-content, so deletions and
// updates must hand the old text back to the index via the special
// 'delete' insert.
type sentenceStore struct {
	store *Store
}

var _ driven.SentenceStore = (*sentenceStore)(nil)

// Insert stores a sentence and its index entry, returning the new id.
func (s *sentenceStore) Insert(ctx context.Context, sentence *domain.Sentence) (int64, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	id, err := insertSentenceTx(ctx, tx, sentence)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return id, nil
}

// InsertBatch stores sentences atomically. With skipDuplicates, rows
// whose exact text is already stored (including earlier rows of the
// same batch) are skipped. Any failure rolls the whole batch back.
func (s *sentenceStore) InsertBatch(ctx context.Context, sentences []domain.Sentence, skipDuplicates bool) (int64, error) {
	if len(sentences) == 0 {
		return 0, nil
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var exists *sql.Stmt
	if skipDuplicates {
		exists, err = tx.PrepareContext(ctx, "SELECT EXISTS(SELECT 1 FROM sentences WHERE text = ?)")
		if err != nil {
			return 0, fmt.Errorf("preparing duplicate check: %w", err)
		}
		defer exists.Close()
	}

	var inserted int64
	for i := range sentences {
		if skipDuplicates {
			var dup bool
			if err := exists.QueryRowContext(ctx, sentences[i].Text).Scan(&dup); err != nil {
				return 0, fmt.Errorf("checking duplicate: %w", err)
			}
			if dup {
				continue
			}
		}

		if _, err := insertSentenceTx(ctx, tx, &sentences[i]); err != nil {
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return inserted, nil
}

// Get retrieves a sentence by id.
func (s *sentenceStore) Get(ctx context.Context, id int64) (*domain.Sentence, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, text, difficulty, category, source, created_at
		FROM sentences WHERE id = ?
	`, id)

	return scanSentence(row)
}

// Update replaces a sentence's text, difficulty and category, and its
// index entry. Returns false when no row has the id.
func (s *sentenceStore) Update(ctx context.Context, sentence *domain.Sentence) (bool, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// The index delete command needs the currently indexed text.
	var oldText string
	err = tx.QueryRowContext(ctx, "SELECT text FROM sentences WHERE id = ?", sentence.ID).Scan(&oldText)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading current text: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE sentences SET text = ?, difficulty = ?, category = ? WHERE id = ?
	`, sentence.Text, sentence.Difficulty.String(), sentence.Category, sentence.ID); err != nil {
		return false, fmt.Errorf("updating sentence: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sentences_fts(sentences_fts, rowid, text) VALUES ('delete', ?, ?)
	`, sentence.ID, oldText); err != nil {
		return false, fmt.Errorf("deindexing old text: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sentences_fts(rowid, text) VALUES (?, ?)
	`, sentence.ID, sentence.Text); err != nil {
		return false, fmt.Errorf("indexing new text: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w", err)
	}
	return true, nil
}

// Delete removes a sentence and its index entry.
// Returns false when no row has the id.
func (s *sentenceStore) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var oldText string
	err = tx.QueryRowContext(ctx, "SELECT text FROM sentences WHERE id = ?", id).Scan(&oldText)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading current text: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM sentences WHERE id = ?", id); err != nil {
		return false, fmt.Errorf("deleting sentence: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sentences_fts(sentences_fts, rowid, text) VALUES ('delete', ?, ?)
	`, id, oldText); err != nil {
		return false, fmt.Errorf("deindexing sentence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w", err)
	}
	return true, nil
}

// DeleteAll wipes the bank and the index, returning rows removed.
func (s *sentenceStore) DeleteAll(ctx context.Context) (int64, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, "DELETE FROM sentences")
	if err != nil {
		return 0, fmt.Errorf("deleting sentences: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sentences_fts(sentences_fts) VALUES ('delete-all')
	`); err != nil {
		return 0, fmt.Errorf("clearing search index: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return removed, nil
}

// Count returns the number of stored sentences.
func (s *sentenceStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sentences").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sentences: %w", err)
	}
	return n, nil
}

// ExportAll returns every sentence in id order.
func (s *sentenceStore) ExportAll(ctx context.Context) ([]domain.Sentence, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, text, difficulty, category, source, created_at
		FROM sentences ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sentences: %w", err)
	}
	defer rows.Close()

	return collectSentences(rows)
}

// ==================== Helper Functions ====================

// insertSentenceTx pairs a content insert with its index entry.
// Shared by Insert, InsertBatch and the index probe.
func insertSentenceTx(ctx context.Context, tx *sql.Tx, sentence *domain.Sentence) (int64, error) {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO sentences (text, difficulty, category, source)
		VALUES (?, ?, ?, ?)
	`, sentence.Text, sentence.Difficulty.String(), sentence.Category, sentence.Source)
	if err != nil {
		return 0, fmt.Errorf("inserting sentence: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sentences_fts(rowid, text) VALUES (?, ?)
	`, id, sentence.Text); err != nil {
		return 0, fmt.Errorf("indexing sentence: %w", err)
	}

	return id, nil
}

// scanSentence scans a single sentence row.
func scanSentence(row *sql.Row) (*domain.Sentence, error) {
	var sentence domain.Sentence
	var difficulty string
	var createdAt sql.NullTime
	if err := row.Scan(&sentence.ID, &sentence.Text, &difficulty, &sentence.Category,
		&sentence.Source, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning sentence: %w", err)
	}

	sentence.Difficulty = domain.Difficulty(difficulty)
	if createdAt.Valid {
		sentence.CreatedAt = createdAt.Time
	}
	return &sentence, nil
}

// scanSentenceRows scans a sentence from *sql.Rows.
func scanSentenceRows(rows *sql.Rows) (*domain.Sentence, error) {
	var sentence domain.Sentence
	var difficulty string
	var createdAt sql.NullTime
	if err := rows.Scan(&sentence.ID, &sentence.Text, &difficulty, &sentence.Category,
		&sentence.Source, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning sentence: %w", err)
	}

	sentence.Difficulty = domain.Difficulty(difficulty)
	if createdAt.Valid {
		sentence.CreatedAt = createdAt.Time
	}
	return &sentence, nil
}

// collectSentences drains a result set into a slice.
func collectSentences(rows *sql.Rows) ([]domain.Sentence, error) {
	var sentences []domain.Sentence //nolint:prealloc // size unknown from query
	for rows.Next() {
		sentence, err := scanSentenceRows(rows)
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, *sentence)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sentences: %w", err)
	}

	return sentences, nil
}
