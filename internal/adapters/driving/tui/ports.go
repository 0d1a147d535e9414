// Package tui provides an interactive terminal browser for the
// sentence bank. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Library manages the contents of the sentence bank.
	Library driving.LibraryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(library driving.LibraryService) *Ports {
	return &Ports{Library: library}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Library == nil {
		return ErrMissingLibraryService
	}
	return nil
}
