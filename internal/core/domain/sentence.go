package domain

import (
	"strings"
	"time"
)

// Difficulty grades a sentence for practice selection.
type Difficulty string

// Available difficulty levels.
const (
	// DifficultyEasy is short, common-word text for warm-ups.
	DifficultyEasy Difficulty = "easy"

	// DifficultyMedium is everyday prose. The default level.
	DifficultyMedium Difficulty = "medium"

	// DifficultyHard is text with punctuation, digits or rare words.
	DifficultyHard Difficulty = "hard"
)

// Storage defaults applied when a sentence is stored without explicit
// values.
const (
	DefaultDifficulty = DifficultyMedium
	DefaultCategory   = "general"
)

// DefaultDrillSize is the drill batch size when the caller does not
// specify one.
const DefaultDrillSize = 10

// Well-known provenance tags recorded in Sentence.Source.
const (
	SourceSeed   = "seed"
	SourceManual = "manual"
)

// IsValid returns true if the difficulty is recognised.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d Difficulty) String() string {
	return string(d)
}

// Description returns a human-readable description of the level.
func (d Difficulty) Description() string {
	switch d {
	case DifficultyEasy:
		return "Easy (short, common words)"
	case DifficultyMedium:
		return "Medium (everyday prose)"
	case DifficultyHard:
		return "Hard (punctuation, digits, rare words)"
	default:
		return "Unknown"
	}
}

// ParseDifficulty converts raw user input to a Difficulty. Input is
// trimmed and lowercased; an empty string yields the default level.
func ParseDifficulty(raw string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(raw)))
	if d == "" {
		return DefaultDifficulty, nil
	}
	if !d.IsValid() {
		return "", ErrInvalidInput
	}
	return d, nil
}

// AllDifficulties returns every level in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Sentence is a unit of practice text in the bank.
type Sentence struct {
	// ID is assigned by storage. Ids grow monotonically and are never
	// reused within a database lifetime, so id order is insertion order.
	ID int64

	// Text is the practice text presented to the typist.
	Text string `validate:"required"`

	// Difficulty grades the sentence for practice selection.
	Difficulty Difficulty `validate:"oneof=easy medium hard"`

	// Category is a free-form grouping label such as "pangrams".
	Category string

	// Source records provenance: the seed batch, an import batch tag,
	// or manual entry. Optional.
	Source string

	// CreatedAt is when the sentence was stored.
	CreatedAt time.Time
}

// Normalise applies the storage defaults in place: text is trimmed,
// the difficulty is canonicalised to lowercase, and empty difficulty
// or category fields receive their defaults.
func (s *Sentence) Normalise() {
	s.Text = strings.TrimSpace(s.Text)
	s.Difficulty = Difficulty(strings.ToLower(strings.TrimSpace(s.Difficulty.String())))
	if s.Difficulty == "" {
		s.Difficulty = DefaultDifficulty
	}
	s.Category = strings.TrimSpace(s.Category)
	if s.Category == "" {
		s.Category = DefaultCategory
	}
}

// Page is one window of a paginated sentence listing.
type Page struct {
	// Data holds the rows for the requested page, in id order.
	Data []Sentence

	// Total is the number of rows matching the filter across all pages.
	Total int64
}
