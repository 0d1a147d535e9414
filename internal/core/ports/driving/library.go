package driving

import (
	"context"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// LibraryService manages the contents of the sentence bank.
//
// Mutations report validation failures and missing rows as no-effect
// results (a zero id wrapping domain.ErrInvalidInput, or false) rather
// than storage faults; only genuine storage failures surface as other
// errors.
type LibraryService interface {
	// Add stores one sentence and returns its id.
	Add(ctx context.Context, text string, difficulty domain.Difficulty, category, source string) (int64, error)

	// Get retrieves a sentence by id, or nil when it does not exist.
	Get(ctx context.Context, id int64) (*domain.Sentence, error)

	// Update replaces a sentence's text, difficulty and category.
	// Returns whether a row was affected; updating a missing id or
	// supplying invalid fields is (false, nil).
	Update(ctx context.Context, id int64, text string, difficulty domain.Difficulty, category string) (bool, error)

	// Delete removes a sentence. Deleting a missing id is (false, nil).
	Delete(ctx context.Context, id int64) (bool, error)

	// Wipe removes every sentence and index entry, returning the
	// number of rows removed.
	Wipe(ctx context.Context) (int64, error)

	// List returns one page of sentences in id order. A non-empty
	// filter applies the search tier's substring semantics.
	List(ctx context.Context, page, limit int, filter string) (*domain.Page, error)

	// Import inserts a batch atomically, optionally skipping rows whose
	// exact text is already stored. Returns the number inserted.
	Import(ctx context.Context, items []domain.Sentence, skipDuplicates bool) (int64, error)

	// Export returns every sentence in id order, re-importable via
	// Import.
	Export(ctx context.Context) ([]domain.Sentence, error)

	// EnsureSeeded loads the seed source into an empty bank. A missing
	// seed source or seed document means nothing to do, not an error.
	// Returns the number of sentences seeded.
	EnsureSeeded(ctx context.Context) (int64, error)

	// Reseed re-runs the seed source, skipping sentences that already
	// exist. Unlike EnsureSeeded, a missing seed document is an error.
	Reseed(ctx context.Context) (int64, error)
}
