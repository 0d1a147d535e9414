package domain

import "strings"

// DefaultSearchLimit caps search results when the caller does not
// specify a limit.
const DefaultSearchLimit = 20

// SearchResult represents a single search hit.
type SearchResult struct {
	// ID is the matched sentence's identifier.
	ID int64

	// Text is the matched practice text.
	Text string

	// Difficulty is the matched sentence's level.
	Difficulty Difficulty

	// Category is the matched sentence's grouping label.
	Category string
}

// TokeniseQuery lowercases a query and splits it on whitespace.
// An empty or all-whitespace query yields no tokens. Both search
// tiers and the listing filter share these token semantics.
func TokeniseQuery(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// IndexStatus reports the relationship between the sentence table and
// its derived search index.
type IndexStatus struct {
	// ContentRows is the number of rows in the sentence table.
	ContentRows int64

	// IndexRows is the number of entries in the search index.
	IndexRows int64

	// InSync is true when every content row has exactly one index entry.
	InSync bool
}
