package driving

import (
	"context"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// SearchService finds sentences for the library search box.
type SearchService interface {
	// Search runs tokenized two-tier search: prefix matching through
	// the FTS index first, then a substring scan when the index errors
	// or finds nothing. It never fails; faults degrade to an empty
	// result set and are logged.
	Search(ctx context.Context, query string, limit int) []domain.SearchResult
}
