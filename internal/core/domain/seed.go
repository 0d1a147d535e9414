package domain

import (
	"encoding/json"
	"fmt"
)

// SeedFile is the decoded starter-content document. The on-disk format
// groups sentence texts by difficulty:
//
//	{"sentences": {"easy": [...], "medium": [...], "hard": [...]}}
//
// Levels may be omitted or empty; unknown level keys are rejected.
type SeedFile struct {
	Sentences map[Difficulty][]string
}

// ParseSeedFile decodes a seed document from JSON.
func ParseSeedFile(data []byte) (*SeedFile, error) {
	var raw struct {
		Sentences map[string][]string `json:"sentences"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed seed document: %v", ErrInvalidInput, err)
	}
	if raw.Sentences == nil {
		return nil, fmt.Errorf("%w: seed document has no sentences object", ErrInvalidInput)
	}

	sf := &SeedFile{Sentences: make(map[Difficulty][]string, len(raw.Sentences))}
	for key, texts := range raw.Sentences {
		d := Difficulty(key)
		if !d.IsValid() {
			return nil, fmt.Errorf("%w: unknown difficulty %q in seed document", ErrInvalidInput, key)
		}
		sf.Sentences[d] = texts
	}
	return sf, nil
}

// Flatten converts the grouped entries into storable sentences.
// Blank entries are dropped. Levels are emitted in ascending order so
// reseeding the same document produces a stable insertion order.
func (f *SeedFile) Flatten() []Sentence {
	var out []Sentence
	for _, d := range AllDifficulties() {
		for _, text := range f.Sentences[d] {
			s := Sentence{
				Text:       text,
				Difficulty: d,
				Category:   DefaultCategory,
				Source:     SourceSeed,
			}
			s.Normalise()
			if s.Text == "" {
				continue
			}
			out = append(out, s)
		}
	}
	return out
}

// Count returns the total number of entries across all levels,
// including blank ones that Flatten would drop.
func (f *SeedFile) Count() int {
	n := 0
	for _, texts := range f.Sentences {
		n += len(texts)
	}
	return n
}
