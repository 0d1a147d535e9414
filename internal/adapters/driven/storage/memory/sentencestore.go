package memory

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
)

// Ensure SentenceStore implements the interface.
var _ driven.SentenceStore = (*SentenceStore)(nil)

// SentenceStore is an in-memory implementation of driven.SentenceStore.
type SentenceStore struct {
	mu        sync.RWMutex
	sentences map[int64]domain.Sentence
	nextID    int64
}

// NewSentenceStore creates a new in-memory sentence store.
func NewSentenceStore() *SentenceStore {
	return &SentenceStore{
		sentences: make(map[int64]domain.Sentence),
	}
}

// Insert stores a sentence and returns its assigned id.
func (s *SentenceStore) Insert(_ context.Context, sentence *domain.Sentence) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(sentence), nil
}

// InsertBatch stores sentences in one shot, optionally skipping texts
// that already exist. It returns the number of rows inserted.
func (s *SentenceStore) InsertBatch(_ context.Context, sentences []domain.Sentence, skipDuplicates bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var existing map[string]bool
	if skipDuplicates {
		existing = make(map[string]bool, len(s.sentences))
		for _, stored := range s.sentences {
			existing[stored.Text] = true
		}
	}

	var inserted int64
	for i := range sentences {
		if skipDuplicates {
			if existing[sentences[i].Text] {
				continue
			}
			existing[sentences[i].Text] = true
		}
		s.insertLocked(&sentences[i])
		inserted++
	}
	return inserted, nil
}

// Get retrieves a sentence by id.
func (s *SentenceStore) Get(_ context.Context, id int64) (*domain.Sentence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sentence, ok := s.sentences[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &sentence, nil
}

// Update rewrites the text, difficulty and category of a stored
// sentence. Updating an absent id reports no effect.
func (s *SentenceStore) Update(_ context.Context, sentence *domain.Sentence) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.sentences[sentence.ID]
	if !ok {
		return false, nil
	}
	stored.Text = sentence.Text
	stored.Difficulty = sentence.Difficulty
	stored.Category = sentence.Category
	s.sentences[sentence.ID] = stored
	return true, nil
}

// Delete removes a sentence. Deleting an absent id reports no effect.
func (s *SentenceStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sentences[id]; !ok {
		return false, nil
	}
	delete(s.sentences, id)
	return true, nil
}

// DeleteAll removes every sentence and returns how many were removed.
func (s *SentenceStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := int64(len(s.sentences))
	s.sentences = make(map[int64]domain.Sentence)
	return removed, nil
}

// Count returns the total number of stored sentences.
func (s *SentenceStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.sentences)), nil
}

// Random draws one sentence from a difficulty partition. It mirrors the
// id-seek draw of the SQLite store: a uniform target in the partition's
// id range resolves to the first row at or above it.
func (s *SentenceStore) Random(_ context.Context, difficulty domain.Difficulty) (*domain.Sentence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.partitionIDsLocked(difficulty)
	if len(ids) == 0 {
		return nil, domain.ErrNotFound
	}

	minID, maxID := ids[0], ids[len(ids)-1]
	target := minID + rand.Int64N(maxID-minID+1)
	at := sort.Search(len(ids), func(i int) bool { return ids[i] >= target })
	sentence := s.sentences[ids[at]]
	return &sentence, nil
}

// Window returns a contiguous run of up to limit sentences from a
// difficulty partition, starting at a random offset.
func (s *SentenceStore) Window(_ context.Context, difficulty domain.Difficulty, limit int) ([]domain.Sentence, error) {
	if limit <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.partitionIDsLocked(difficulty)
	if len(ids) == 0 {
		return nil, nil
	}

	offset := 0
	if len(ids) > limit {
		offset = int(rand.Int64N(int64(len(ids)-limit) + 1))
	} else {
		limit = len(ids)
	}

	window := make([]domain.Sentence, 0, limit)
	for _, id := range ids[offset : offset+limit] {
		window = append(window, s.sentences[id])
	}
	return window, nil
}

// SearchIndexed returns sentences where any token prefix-matches a
// word. Rows matching more tokens rank higher.
func (s *SentenceStore) SearchIndexed(_ context.Context, tokens []string, limit int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type ranked struct {
		result domain.SearchResult
		score  int
	}
	var matches []ranked
	for _, id := range s.allIDsLocked() {
		sentence := s.sentences[id]
		score := prefixScore(sentence.Text, tokens)
		if score == 0 {
			continue
		}
		matches = append(matches, ranked{
			result: domain.SearchResult{
				ID:         sentence.ID,
				Text:       sentence.Text,
				Difficulty: sentence.Difficulty,
				Category:   sentence.Category,
			},
			score: score,
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].result.ID < matches[j].result.ID
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	results := make([]domain.SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.result)
	}
	return results, nil
}

// SearchScan returns sentences whose text contains every token as a
// substring, newest first.
func (s *SentenceStore) SearchScan(_ context.Context, tokens []string, limit int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.allIDsLocked()
	var results []domain.SearchResult
	for i := len(ids) - 1; i >= 0; i-- {
		sentence := s.sentences[ids[i]]
		if !containsAll(sentence.Text, tokens) {
			continue
		}
		results = append(results, domain.SearchResult{
			ID:         sentence.ID,
			Text:       sentence.Text,
			Difficulty: sentence.Difficulty,
			Category:   sentence.Category,
		})
		if limit > 0 && len(results) == limit {
			break
		}
	}
	return results, nil
}

// List returns one page of sentences in id order, with the total count
// of rows passing the filter.
func (s *SentenceStore) List(_ context.Context, page, limit int, filterTokens []string) (*domain.Page, error) {
	if limit < 1 {
		return nil, domain.ErrInvalidInput
	}
	if page < 1 {
		page = 1
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []int64
	for _, id := range s.allIDsLocked() {
		if len(filterTokens) > 0 && !containsAll(s.sentences[id].Text, filterTokens) {
			continue
		}
		filtered = append(filtered, id)
	}

	result := &domain.Page{Total: int64(len(filtered))}
	offset := (page - 1) * limit
	if offset >= len(filtered) {
		return result, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	for _, id := range filtered[offset:end] {
		result.Data = append(result.Data, s.sentences[id])
	}
	return result, nil
}

// ExportAll returns every sentence in id order.
func (s *SentenceStore) ExportAll(_ context.Context) ([]domain.Sentence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.allIDsLocked()
	all := make([]domain.Sentence, 0, len(ids))
	for _, id := range ids {
		all = append(all, s.sentences[id])
	}
	return all, nil
}

// insertLocked assigns the next id and stores a copy. Callers hold the
// write lock.
func (s *SentenceStore) insertLocked(sentence *domain.Sentence) int64 {
	s.nextID++
	stored := *sentence
	stored.ID = s.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	s.sentences[stored.ID] = stored
	sentence.ID = stored.ID
	return stored.ID
}

// allIDsLocked returns every stored id in ascending order.
func (s *SentenceStore) allIDsLocked() []int64 {
	ids := make([]int64, 0, len(s.sentences))
	for id := range s.sentences {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// partitionIDsLocked returns the ids of one difficulty partition in
// ascending order.
func (s *SentenceStore) partitionIDsLocked(difficulty domain.Difficulty) []int64 {
	var ids []int64
	for id, sentence := range s.sentences {
		if sentence.Difficulty == difficulty {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// prefixScore counts how many tokens prefix-match a word of the text.
func prefixScore(text string, tokens []string) int {
	words := strings.Fields(strings.ToLower(text))
	score := 0
	for _, token := range tokens {
		for _, word := range words {
			if strings.HasPrefix(word, token) {
				score++
				break
			}
		}
	}
	return score
}

// containsAll reports whether every token appears somewhere in the
// text, case-insensitively.
func containsAll(text string, tokens []string) bool {
	lower := strings.ToLower(text)
	for _, token := range tokens {
		if !strings.Contains(lower, token) {
			return false
		}
	}
	return true
}
