package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/typebank-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/typebank-cli/internal/core/domain"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// faultySearchStore wraps a real store and injects failures into the
// search tiers.
type faultySearchStore struct {
	driven.SentenceStore
	indexedErr error
	scanErr    error
}

func (f *faultySearchStore) SearchIndexed(ctx context.Context, tokens []string, limit int) ([]domain.SearchResult, error) {
	if f.indexedErr != nil {
		return nil, f.indexedErr
	}
	return f.SentenceStore.SearchIndexed(ctx, tokens, limit)
}

func (f *faultySearchStore) SearchScan(ctx context.Context, tokens []string, limit int) ([]domain.SearchResult, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	return f.SentenceStore.SearchScan(ctx, tokens, limit)
}

// seedSearchStore fills a store with a few known sentences.
func seedSearchStore(t *testing.T) *memory.SentenceStore {
	t.Helper()

	store := memory.NewSentenceStore()
	ctx := context.Background()
	for _, text := range []string{
		"the quick brown fox",
		"pack my box with five dozen jugs",
		"typewriter maintenance guide",
	} {
		_, err := store.Insert(ctx, &domain.Sentence{
			Text:       text,
			Difficulty: domain.DifficultyMedium,
			Category:   domain.DefaultCategory,
		})
		require.NoError(t, err)
	}
	return store
}

// --- Tests ---

func TestSearchService_Search_IndexedTier(t *testing.T) {
	svc := NewSearchService(seedSearchStore(t))

	results := svc.Search(context.Background(), "quick fox", 10)

	require.Len(t, results, 1)
	assert.Equal(t, "the quick brown fox", results[0].Text)
	assert.Equal(t, domain.DifficultyMedium, results[0].Difficulty)
}

func TestSearchService_Search_EmptyQuery(t *testing.T) {
	svc := NewSearchService(seedSearchStore(t))

	assert.Empty(t, svc.Search(context.Background(), "", 10))
	assert.Empty(t, svc.Search(context.Background(), "   \t ", 10))
}

func TestSearchService_Search_FallsBackToScanForMidWordToken(t *testing.T) {
	svc := NewSearchService(seedSearchStore(t))

	// "writer" is embedded mid-word in "typewriter": no word prefix
	// matches, so only the substring tier can find it.
	results := svc.Search(context.Background(), "writer", 10)

	require.Len(t, results, 1)
	assert.Equal(t, "typewriter maintenance guide", results[0].Text)
}

func TestSearchService_Search_MasksIndexedTierFault(t *testing.T) {
	store := &faultySearchStore{
		SentenceStore: seedSearchStore(t),
		indexedErr:    errors.New("fts5: syntax error"),
	}
	svc := NewSearchService(store)

	// The indexed tier fails outright; the caller still gets results.
	results := svc.Search(context.Background(), "quick", 10)

	require.Len(t, results, 1)
	assert.Equal(t, "the quick brown fox", results[0].Text)
}

func TestSearchService_Search_ScanFaultDegradesToEmpty(t *testing.T) {
	store := &faultySearchStore{
		SentenceStore: seedSearchStore(t),
		indexedErr:    errors.New("index gone"),
		scanErr:       errors.New("disk gone"),
	}
	svc := NewSearchService(store)

	results := svc.Search(context.Background(), "quick", 10)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchService_Search_NoMatches(t *testing.T) {
	svc := NewSearchService(seedSearchStore(t))

	results := svc.Search(context.Background(), "zyzzyva", 10)

	assert.Empty(t, results)
}

func TestSearchService_Search_DefaultLimit(t *testing.T) {
	store := memory.NewSentenceStore()
	ctx := context.Background()
	for range 30 {
		_, err := store.Insert(ctx, &domain.Sentence{
			Text:       "repeated drill text",
			Difficulty: domain.DifficultyEasy,
			Category:   domain.DefaultCategory,
		})
		require.NoError(t, err)
	}
	svc := NewSearchService(store)

	results := svc.Search(ctx, "drill", 0)

	assert.Len(t, results, domain.DefaultSearchLimit)
}

func TestSearchService_Search_CaseInsensitive(t *testing.T) {
	svc := NewSearchService(seedSearchStore(t))

	results := svc.Search(context.Background(), "QUICK Fox", 10)

	require.Len(t, results, 1)
	assert.Equal(t, "the quick brown fox", results[0].Text)
}
