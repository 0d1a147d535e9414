// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// PageLoaded carries one page of sentences back to the browse view.
type PageLoaded struct {
	Page   *domain.Page
	Number int
	Filter string
	Err    error
}

// SentenceDeleted signals that a delete finished.
type SentenceDeleted struct {
	ID       int64
	Affected bool
	Err      error
}
