package driving

import (
	"context"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// PracticeService delivers practice text to the typing surface.
//
// Both operations are read-only and degrade rather than fail: an empty
// difficulty partition and a storage fault alike yield a nil or empty
// result, with faults reported on the log only.
type PracticeService interface {
	// RandomSentence returns one approximately uniformly sampled
	// sentence from the difficulty partition, or nil when none is
	// available.
	RandomSentence(ctx context.Context, difficulty domain.Difficulty) *domain.Sentence

	// Drill returns up to limit sentences from a randomly placed
	// contiguous window of the partition, in id order. Partitions
	// smaller than limit are returned whole.
	Drill(ctx context.Context, difficulty domain.Difficulty, limit int) []domain.Sentence
}
