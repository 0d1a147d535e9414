package driven

import (
	"context"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// IndexAdmin exposes maintenance operations on the derived search index.
// Kept separate from SentenceStore so the diagnostic surface is never
// reachable from the search path.
type IndexAdmin interface {
	// RebuildIndex drops and repopulates the search index from the
	// sentence table in one pass, returning the indexed row count.
	RebuildIndex(ctx context.Context) (int64, error)

	// IndexStatus compares content and index row counts.
	IndexStatus(ctx context.Context) (*domain.IndexStatus, error)

	// ProbeIndex checks live synchronisation: a throwaway sentence is
	// written through the normal paired write path inside a transaction
	// that is always rolled back, and the index is queried for it.
	// Returns whether the index observed the row.
	ProbeIndex(ctx context.Context) (bool, error)
}
