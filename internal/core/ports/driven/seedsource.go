package driven

import (
	"context"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// SeedSource supplies starter content for an empty sentence bank.
// The composition root decides where the document lives and injects it
// here; core never probes the filesystem for candidates.
type SeedSource interface {
	// Load reads and decodes the seed document.
	// Returns domain.ErrNoSeedData when none is available.
	Load(ctx context.Context) (*domain.SeedFile, error)

	// Describe identifies the source for log lines, e.g. a file path.
	Describe() string
}
