package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driving"
	"github.com/custodia-labs/typebank-cli/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService owns maintenance of the derived search index. These
// are operator commands on their own surface; the search path cannot
// trigger them.
type IndexService struct {
	admin driven.IndexAdmin
}

// NewIndexService creates a new index service.
func NewIndexService(admin driven.IndexAdmin) *IndexService {
	return &IndexService{admin: admin}
}

// Rebuild drops and repopulates the index from the sentence table,
// returning the number of rows indexed. The recovery path for
// suspected mid-session corruption.
func (s *IndexService) Rebuild(ctx context.Context) (int64, error) {
	logger.Section("Index Rebuild")

	rows, err := s.admin.RebuildIndex(ctx)
	if err != nil {
		return 0, fmt.Errorf("rebuilding index: %w", err)
	}

	logger.Info("Index rebuilt: %d rows", rows)
	return rows, nil
}

// Status reports content and index row counts and whether they agree.
func (s *IndexService) Status(ctx context.Context) (*domain.IndexStatus, error) {
	status, err := s.admin.IndexStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading index status: %w", err)
	}
	return status, nil
}

// Probe verifies that a write through the normal path is visible to
// the index, leaving no trace behind.
func (s *IndexService) Probe(ctx context.Context) (bool, error) {
	logger.Section("Index Probe")

	visible, err := s.admin.ProbeIndex(ctx)
	if err != nil {
		return false, fmt.Errorf("probing index: %w", err)
	}

	logger.Debug("Probe visible to index: %t", visible)
	return visible, nil
}
