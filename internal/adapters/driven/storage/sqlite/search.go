package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// ==================== Search ====================

// SearchIndexed matches per-token prefixes through the FTS index,
// best match first.
//
// Tokens are OR-combined so any prefix hit qualifies a row; ranking
// then pushes rows matching more tokens up. Errors surface to the
// caller, which is expected to fall back to SearchScan.
func (s *sentenceStore) SearchIndexed(ctx context.Context, tokens []string, limit int) ([]domain.SearchResult, error) {
	if len(tokens) == 0 || limit <= 0 {
		return nil, nil
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT s.id, s.text, s.difficulty, s.category
		FROM sentences_fts f
		JOIN sentences s ON s.id = f.rowid
		WHERE sentences_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, buildMatchExpr(tokens), limit)
	if err != nil {
		return nil, fmt.Errorf("querying search index: %w", err)
	}
	defer rows.Close()

	return collectResults(rows)
}

// SearchScan runs a conjunctive substring scan over the sentence table,
// newest first. Every token must appear somewhere in the text, so this
// tier also finds tokens embedded mid-word that prefix matching misses.
func (s *sentenceStore) SearchScan(ctx context.Context, tokens []string, limit int) ([]domain.SearchResult, error) {
	if len(tokens) == 0 || limit <= 0 {
		return nil, nil
	}

	filter, args := buildScanFilter(tokens)
	args = append(args, limit)

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, text, difficulty, category
		FROM sentences
		WHERE `+filter+`
		ORDER BY id DESC
		LIMIT ?
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("scanning sentences: %w", err)
	}
	defer rows.Close()

	return collectResults(rows)
}

// List returns one page of sentences in id order, optionally filtered
// with SearchScan's substring semantics. Total counts the filtered set
// across all pages.
func (s *sentenceStore) List(ctx context.Context, page, limit int, filterTokens []string) (*domain.Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: page limit must be positive", domain.ErrInvalidInput)
	}

	filter := "1=1"
	var args []any
	if len(filterTokens) > 0 {
		filter, args = buildScanFilter(filterTokens)
	}

	var total int64
	countArgs := make([]any, len(args))
	copy(countArgs, args)
	if err := s.store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sentences WHERE "+filter, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("counting filtered sentences: %w", err)
	}

	offset := (page - 1) * limit
	args = append(args, limit, offset)
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, text, difficulty, category, source, created_at
		FROM sentences
		WHERE `+filter+`
		ORDER BY id
		LIMIT ? OFFSET ?
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying page: %w", err)
	}
	defer rows.Close()

	data, err := collectSentences(rows)
	if err != nil {
		return nil, err
	}

	return &domain.Page{Data: data, Total: total}, nil
}

// ==================== Helper Functions ====================

// buildMatchExpr builds the FTS expression `"tok1"* OR "tok2"*`.
// Double-quoting keeps tokens containing FTS operator characters
// literal; embedded quotes are doubled per the FTS string syntax.
func buildMatchExpr(tokens []string) string {
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		quoted := strings.ReplaceAll(tok, `"`, `""`)
		terms = append(terms, `"`+quoted+`"*`)
	}
	return strings.Join(terms, " OR ")
}

// buildScanFilter builds the conjunctive substring filter shared by the
// scan tier and the listing filter: one LIKE clause per token, AND-ed.
func buildScanFilter(tokens []string) (string, []any) {
	clauses := make([]string, 0, len(tokens))
	args := make([]any, 0, len(tokens))
	for _, tok := range tokens {
		clauses = append(clauses, `text LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(tok)+"%")
	}
	return strings.Join(clauses, " AND "), args
}

// escapeLike escapes LIKE pattern characters in a token.
func escapeLike(tok string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(tok)
}

// collectResults drains a result set of search hits.
func collectResults(rows *sql.Rows) ([]domain.SearchResult, error) {
	var results []domain.SearchResult //nolint:prealloc // size unknown from query
	for rows.Next() {
		var r domain.SearchResult
		var difficulty string
		if err := rows.Scan(&r.ID, &r.Text, &difficulty, &r.Category); err != nil {
			return nil, fmt.Errorf("scanning search result: %w", err)
		}
		r.Difficulty = domain.Difficulty(difficulty)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search results: %w", err)
	}

	return results, nil
}
