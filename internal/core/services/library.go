package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driving"
	"github.com/custodia-labs/typebank-cli/internal/logger"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// LibraryService manages the contents of the sentence bank: single-row
// CRUD, paginated browsing, bulk import/export and seeding.
type LibraryService struct {
	store driven.SentenceStore
	seed  driven.SeedSource
}

// NewLibraryService creates a new library service.
// The seed source is optional (can be nil); without one the bank
// simply starts empty.
func NewLibraryService(store driven.SentenceStore, seed driven.SeedSource) *LibraryService {
	return &LibraryService{
		store: store,
		seed:  seed,
	}
}

// Add stores one sentence and returns its id. Blank text or an
// unknown difficulty wraps domain.ErrInvalidInput; callers surface
// that as a no-effect result rather than a fault.
func (s *LibraryService) Add(ctx context.Context, text string, difficulty domain.Difficulty, category, source string) (int64, error) {
	sentence := domain.Sentence{
		Text:       text,
		Difficulty: difficulty,
		Category:   category,
		Source:     source,
	}
	if err := validateSentence(&sentence); err != nil {
		return 0, err
	}

	id, err := s.store.Insert(ctx, &sentence)
	if err != nil {
		return 0, fmt.Errorf("adding sentence: %w", err)
	}

	logger.Debug("Added sentence %d (%s/%s)", id, sentence.Difficulty, sentence.Category)
	return id, nil
}

// Get retrieves a sentence by id, or nil when it does not exist.
func (s *LibraryService) Get(ctx context.Context, id int64) (*domain.Sentence, error) {
	sentence, err := s.store.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting sentence %d: %w", id, err)
	}
	return sentence, nil
}

// Update replaces a sentence's text, difficulty and category. Invalid
// fields and missing ids alike report (false, nil): the operation had
// no effect, and only genuine storage faults are errors.
func (s *LibraryService) Update(ctx context.Context, id int64, text string, difficulty domain.Difficulty, category string) (bool, error) {
	sentence := domain.Sentence{
		ID:         id,
		Text:       text,
		Difficulty: difficulty,
		Category:   category,
	}
	if err := validateSentence(&sentence); err != nil {
		logger.Debug("Update of sentence %d rejected: %v", id, err)
		return false, nil
	}

	affected, err := s.store.Update(ctx, &sentence)
	if err != nil {
		return false, fmt.Errorf("updating sentence %d: %w", id, err)
	}
	return affected, nil
}

// Delete removes a sentence. Deleting a missing id is (false, nil).
func (s *LibraryService) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("deleting sentence %d: %w", id, err)
	}
	return affected, nil
}

// Wipe removes every sentence and index entry. Only an explicit
// operator action calls this; nothing wipes implicitly.
func (s *LibraryService) Wipe(ctx context.Context) (int64, error) {
	removed, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("wiping sentence bank: %w", err)
	}
	logger.Info("Wiped %d sentences", removed)
	return removed, nil
}

// List returns one page of sentences in id order. A non-empty filter
// applies the scan tier's substring semantics.
func (s *LibraryService) List(ctx context.Context, page, limit int, filter string) (*domain.Page, error) {
	tokens := domain.TokeniseQuery(filter)
	result, err := s.store.List(ctx, page, limit, tokens)
	if err != nil {
		return nil, fmt.Errorf("listing sentences: %w", err)
	}
	return result, nil
}

// Import inserts a batch atomically. Every item is validated before
// any row is written, so a bad item rejects the whole batch; with
// skipDuplicates, rows whose exact text is already stored are skipped.
// Items without a source get a shared per-batch tag for provenance.
func (s *LibraryService) Import(ctx context.Context, items []domain.Sentence, skipDuplicates bool) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	batchTag := "import-" + uuid.NewString()[:8]
	batch := make([]domain.Sentence, len(items))
	for i := range items {
		batch[i] = items[i]
		batch[i].ID = 0
		if batch[i].Source == "" {
			batch[i].Source = batchTag
		}
		if err := validateSentence(&batch[i]); err != nil {
			return 0, fmt.Errorf("item %d: %w", i, err)
		}
	}

	inserted, err := s.store.InsertBatch(ctx, batch, skipDuplicates)
	if err != nil {
		return 0, fmt.Errorf("importing batch: %w", err)
	}

	logger.Info("Imported %d of %d sentences (batch %s)", inserted, len(items), batchTag)
	return inserted, nil
}

// Export returns every sentence in id order. The dump is
// re-importable: Import with skipDuplicates inserts nothing new.
func (s *LibraryService) Export(ctx context.Context) ([]domain.Sentence, error) {
	all, err := s.store.ExportAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("exporting sentences: %w", err)
	}
	return all, nil
}

// EnsureSeeded loads the seed source into an empty bank. It is the
// startup path, so nothing here is fatal: no seed source, a missing
// document or a malformed one all mean "no seed available" and an
// empty bank. Returns the number of sentences seeded.
func (s *LibraryService) EnsureSeeded(ctx context.Context) (int64, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting sentences: %w", err)
	}
	if count > 0 {
		logger.Debug("Bank already has %d sentences, skipping seed", count)
		return 0, nil
	}

	if s.seed == nil {
		logger.Debug("No seed source configured, starting empty")
		return 0, nil
	}

	seedFile, err := s.seed.Load(ctx)
	if err != nil {
		logger.Warn("No seed available from %s: %v", s.seed.Describe(), err)
		return 0, nil
	}

	inserted, err := s.store.InsertBatch(ctx, seedFile.Flatten(), false)
	if err != nil {
		return 0, fmt.Errorf("seeding sentences: %w", err)
	}

	logger.Info("Seeded %d sentences from %s", inserted, s.seed.Describe())
	return inserted, nil
}

// Reseed re-runs the seed source, skipping sentences that already
// exist. The operator asked for this explicitly, so here a missing
// seed document IS an error.
func (s *LibraryService) Reseed(ctx context.Context) (int64, error) {
	if s.seed == nil {
		return 0, domain.ErrNoSeedData
	}

	seedFile, err := s.seed.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading seed source: %w", err)
	}

	inserted, err := s.store.InsertBatch(ctx, seedFile.Flatten(), true)
	if err != nil {
		return 0, fmt.Errorf("reseeding sentences: %w", err)
	}

	logger.Info("Reseeded %d sentences from %s", inserted, s.seed.Describe())
	return inserted, nil
}
