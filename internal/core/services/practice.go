package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driving"
	"github.com/custodia-labs/typebank-cli/internal/logger"
)

// Ensure PracticeService implements the interface.
var _ driving.PracticeService = (*PracticeService)(nil)

// PracticeService delivers practice text to the typing surface.
//
// Its reads degrade rather than fail: the typist sees "no sentence
// available", never a storage error, so faults are reported on the log
// only.
type PracticeService struct {
	store driven.SentenceStore
}

// NewPracticeService creates a new practice service.
func NewPracticeService(store driven.SentenceStore) *PracticeService {
	return &PracticeService{store: store}
}

// RandomSentence returns one approximately uniformly sampled sentence
// from the difficulty partition, or nil when the partition is empty or
// storage fails.
func (s *PracticeService) RandomSentence(ctx context.Context, difficulty domain.Difficulty) *domain.Sentence {
	logger.Section("Random Sentence")
	logger.Debug("Difficulty: %s", difficulty)

	sentence, err := s.store.Random(ctx, difficulty)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("Partition %q is empty", difficulty)
			return nil
		}
		logger.Error("Random draw failed: %v", err)
		return nil
	}

	logger.Debug("Drew sentence %d", sentence.ID)
	return sentence
}

// Drill returns up to limit sentences from a randomly placed
// contiguous window of the partition, in id order. A non-positive
// limit falls back to the default batch size.
func (s *PracticeService) Drill(ctx context.Context, difficulty domain.Difficulty, limit int) []domain.Sentence {
	logger.Section("Drill Batch")

	if limit <= 0 {
		limit = domain.DefaultDrillSize
	}
	logger.Debug("Difficulty: %s, limit: %d", difficulty, limit)

	sentences, err := s.store.Window(ctx, difficulty, limit)
	if err != nil {
		logger.Error("Window read failed: %v", err)
		return nil
	}

	logger.Debug("Window of %d sentences", len(sentences))
	return sentences
}
