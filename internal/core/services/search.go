package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driving"
	"github.com/custodia-labs/typebank-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs two-tier sentence search: prefix matching through
// the FTS index first, then a substring scan over the sentence table
// when the index errors or finds nothing.
type SearchService struct {
	store driven.SentenceStore
}

// NewSearchService creates a new search service.
func NewSearchService(store driven.SentenceStore) *SearchService {
	return &SearchService{store: store}
}

// Search finds sentences matching the query. It never fails: a tier-1
// fault falls through to tier 2, and a tier-2 fault degrades to an
// empty result set. Both are logged, so masked faults stay visible to
// the operator without reaching the caller.
func (s *SearchService) Search(ctx context.Context, query string, limit int) []domain.SearchResult {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}
	}

	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}
	logger.Debug("Limit: %d", limit)

	tokens := domain.TokeniseQuery(query)
	if len(tokens) == 0 {
		logger.Debug("No tokens after normalisation, returning no results")
		return []domain.SearchResult{}
	}
	logger.Debug("Tokens: %v", tokens)

	// Tier 1: indexed prefix search. Any error here is masked; the
	// scan tier answers instead.
	results, err := s.store.SearchIndexed(ctx, tokens, limit)
	if err != nil {
		logger.Error("Indexed search failed, falling back to scan: %v", err)
	}
	if err == nil && len(results) > 0 {
		logger.Debug("Indexed tier: %d results", len(results))
		return results
	}

	// Tier 2: conjunctive substring scan. Slower but immune to
	// tokenisation near-misses, so a mid-word token still hits.
	logger.Debug("Indexed tier empty, running substring scan")
	results, err = s.store.SearchScan(ctx, tokens, limit)
	if err != nil {
		logger.Error("Substring scan failed: %v", err)
		return []domain.SearchResult{}
	}

	logger.Debug("Scan tier: %d results", len(results))
	return results
}
