package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// mockIndexAdmin implements driven.IndexAdmin for testing.
type mockIndexAdmin struct {
	rebuildRows int64
	rebuildErr  error
	status      *domain.IndexStatus
	statusErr   error
	probeOK     bool
	probeErr    error

	rebuildCalls int
}

func (m *mockIndexAdmin) RebuildIndex(_ context.Context) (int64, error) {
	m.rebuildCalls++
	return m.rebuildRows, m.rebuildErr
}

func (m *mockIndexAdmin) IndexStatus(_ context.Context) (*domain.IndexStatus, error) {
	return m.status, m.statusErr
}

func (m *mockIndexAdmin) ProbeIndex(_ context.Context) (bool, error) {
	return m.probeOK, m.probeErr
}

func TestIndexService_Rebuild(t *testing.T) {
	admin := &mockIndexAdmin{rebuildRows: 42}
	svc := NewIndexService(admin)

	rows, err := svc.Rebuild(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), rows)
	assert.Equal(t, 1, admin.rebuildCalls)
}

func TestIndexService_Rebuild_Error(t *testing.T) {
	svc := NewIndexService(&mockIndexAdmin{rebuildErr: errors.New("disk fault")})

	_, err := svc.Rebuild(context.Background())
	assert.Error(t, err)
}

func TestIndexService_Status(t *testing.T) {
	svc := NewIndexService(&mockIndexAdmin{
		status: &domain.IndexStatus{ContentRows: 10, IndexRows: 8, InSync: false},
	})

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), status.ContentRows)
	assert.Equal(t, int64(8), status.IndexRows)
	assert.False(t, status.InSync)
}

func TestIndexService_Probe(t *testing.T) {
	svc := NewIndexService(&mockIndexAdmin{probeOK: true})

	visible, err := svc.Probe(context.Background())
	require.NoError(t, err)
	assert.True(t, visible)
}

func TestIndexService_Probe_Error(t *testing.T) {
	svc := NewIndexService(&mockIndexAdmin{probeErr: errors.New("write failed")})

	_, err := svc.Probe(context.Background())
	assert.Error(t, err)
}
