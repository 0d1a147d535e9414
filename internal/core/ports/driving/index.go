package driving

import (
	"context"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// IndexService owns maintenance of the derived search index. These are
// operator commands; nothing on the search path can trigger them.
type IndexService interface {
	// Rebuild drops and repopulates the index from the sentence table,
	// returning the number of rows indexed.
	Rebuild(ctx context.Context) (int64, error)

	// Status reports content and index row counts and whether they
	// agree.
	Status(ctx context.Context) (*domain.IndexStatus, error)

	// Probe verifies that a write through the normal path is visible
	// to the index, leaving no trace behind.
	Probe(ctx context.Context) (bool, error)
}
