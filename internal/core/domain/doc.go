// Package domain defines the core business entities for Typebank.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Sentence: A unit of practice text with difficulty and category
//   - SearchResult: A search hit projected from the sentence bank
//   - SeedFile: The starter content document grouped by difficulty
//   - Page: One window of a paginated listing
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse. Validation tags on domain structs are inert
// metadata; the validator runs in the services layer.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
