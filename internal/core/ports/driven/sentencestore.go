package driven

import (
	"context"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// SentenceStore persists the sentence bank and its derived search index.
// Backed by SQLite; every content mutation pairs with the matching index
// mutation inside one transaction, so the index never drifts on the
// write path.
type SentenceStore interface {
	// Insert stores a sentence and its index entry, returning the new id.
	Insert(ctx context.Context, s *domain.Sentence) (int64, error)

	// InsertBatch stores sentences atomically. With skipDuplicates,
	// rows whose exact text is already stored are skipped. Returns the
	// number of rows inserted; any failure rolls the whole batch back.
	InsertBatch(ctx context.Context, sentences []domain.Sentence, skipDuplicates bool) (int64, error)

	// Get retrieves a sentence by id.
	// Returns domain.ErrNotFound when no row has the id.
	Get(ctx context.Context, id int64) (*domain.Sentence, error)

	// Update replaces a sentence's text, difficulty and category, and
	// its index entry. Returns false when no row has the id.
	Update(ctx context.Context, s *domain.Sentence) (bool, error)

	// Delete removes a sentence and its index entry.
	// Returns false when no row has the id.
	Delete(ctx context.Context, id int64) (bool, error)

	// DeleteAll wipes the bank and the index, returning rows removed.
	DeleteAll(ctx context.Context) (int64, error)

	// Count returns the number of stored sentences.
	Count(ctx context.Context) (int64, error)

	// Random returns one approximately uniformly sampled sentence from
	// a difficulty partition. Returns domain.ErrNotFound when the
	// partition is empty.
	Random(ctx context.Context, difficulty domain.Difficulty) (*domain.Sentence, error)

	// Window returns a randomly placed contiguous run of up to limit
	// sentences from a difficulty partition, in id order.
	Window(ctx context.Context, difficulty domain.Difficulty, limit int) ([]domain.Sentence, error)

	// SearchIndexed matches per-token prefixes through the FTS index,
	// best match first.
	SearchIndexed(ctx context.Context, tokens []string, limit int) ([]domain.SearchResult, error)

	// SearchScan runs a conjunctive substring scan over the sentence
	// table, newest first. The fallback tier when the index errors or
	// finds nothing.
	SearchScan(ctx context.Context, tokens []string, limit int) ([]domain.SearchResult, error)

	// List returns one page of sentences in id order, optionally
	// filtered with SearchScan's substring semantics.
	List(ctx context.Context, page, limit int, filterTokens []string) (*domain.Page, error)

	// ExportAll returns every sentence in id order.
	ExportAll(ctx context.Context) ([]domain.Sentence, error)
}
