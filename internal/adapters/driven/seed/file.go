// Package seed provides the file-based implementation of the seed
// source driven port. A seed file is a JSON document bundling starter
// sentences per difficulty.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
)

// Ensure FileSource implements the interface.
var _ driven.SeedSource = (*FileSource)(nil)

// FileSource loads a seed document from a JSON file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a seed source reading from the given path.
// The path is resolved by the caller; no probing happens here.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and parses the seed file. A missing file reports
// domain.ErrNoSeedData so callers can tell "nothing bundled" apart
// from a broken document.
func (s *FileSource) Load(_ context.Context) (*domain.SeedFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("seed file %s: %w", s.path, domain.ErrNoSeedData)
		}
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	seedFile, err := domain.ParseSeedFile(data)
	if err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", s.path, err)
	}
	return seedFile, nil
}

// Describe returns the source path for log lines.
func (s *FileSource) Describe() string {
	return s.path
}
