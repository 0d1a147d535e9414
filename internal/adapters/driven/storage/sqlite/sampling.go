package sqlite

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// ==================== Sampling ====================

// Random returns one approximately uniformly sampled sentence from a
// difficulty partition.
//
// Instead of ORDER BY RANDOM(), which scans the whole partition, it
// reads the partition's count and id bounds in one aggregate, draws a
// uniform target id, and seeks the first row at or above the target on
// the difficulty index. Rows immediately after an id gap are slightly
// over-sampled; that bias is the accepted price of O(log n) retrieval
// and must not be "fixed" into a full scan.
func (s *sentenceStore) Random(ctx context.Context, difficulty domain.Difficulty) (*domain.Sentence, error) {
	var count, minID, maxID int64
	err := s.store.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(MIN(id), 0), COALESCE(MAX(id), 0)
		FROM sentences WHERE difficulty = ?
	`, difficulty.String()).Scan(&count, &minID, &maxID)
	if err != nil {
		return nil, fmt.Errorf("reading partition bounds: %w", err)
	}
	if count == 0 {
		return nil, domain.ErrNotFound
	}

	target := minID + rand.Int64N(maxID-minID+1)

	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, text, difficulty, category, source, created_at
		FROM sentences
		WHERE difficulty = ? AND id >= ?
		ORDER BY id LIMIT 1
	`, difficulty.String(), target)

	sentence, err := scanSentence(row)
	if err == nil {
		return sentence, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	// The target can land after the partition's last surviving id when
	// rows are deleted between the aggregate and the seek. Wrap to the
	// partition's first row.
	row = s.store.db.QueryRowContext(ctx, `
		SELECT id, text, difficulty, category, source, created_at
		FROM sentences
		WHERE difficulty = ?
		ORDER BY id LIMIT 1
	`, difficulty.String())

	return scanSentence(row)
}

// Window returns a randomly placed contiguous run of up to limit
// sentences from a difficulty partition, in id order.
//
// A partition no larger than limit is returned whole. Otherwise the
// window starts at a uniform offset in [0, count-limit], so callers get
// positional variety but must not assume the rows are independent
// samples.
func (s *sentenceStore) Window(ctx context.Context, difficulty domain.Difficulty, limit int) ([]domain.Sentence, error) {
	if limit <= 0 {
		return nil, nil
	}

	var count int64
	err := s.store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sentences WHERE difficulty = ?",
		difficulty.String()).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("counting partition: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	var offset int64
	if count > int64(limit) {
		offset = rand.Int64N(count - int64(limit) + 1)
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, text, difficulty, category, source, created_at
		FROM sentences WHERE difficulty = ?
		ORDER BY id LIMIT ? OFFSET ?
	`, difficulty.String(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying window: %w", err)
	}
	defer rows.Close()

	return collectSentences(rows)
}
