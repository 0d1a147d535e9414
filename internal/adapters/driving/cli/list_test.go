package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

func TestListCmd_EmptyBank(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No sentences found.")
}

func TestListCmd_ShowsRowsAndSummary(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	addSentence(t, store, "alpha row", domain.DifficultyEasy)
	addSentence(t, store, "beta row", domain.DifficultyHard)

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "alpha row")
	assert.Contains(t, out, "beta row")
	assert.Contains(t, out, "[hard/general]")
	assert.Contains(t, out, "Page 1 of 1 (2 sentences)")
}

func TestListCmd_Pagination(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	for i := range 5 {
		addSentence(t, store, fmt.Sprintf("row number %d", i+1), domain.DifficultyMedium)
	}

	out, err := execute(t, "list", "--page", "2", "--limit", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "row number 3")
	assert.Contains(t, out, "row number 4")
	assert.NotContains(t, out, "row number 1")
	assert.Contains(t, out, "Page 2 of 3 (5 sentences)")
}

func TestListCmd_Filter(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	addSentence(t, store, "quick brown fox", domain.DifficultyEasy)
	addSentence(t, store, "slow grey wolf", domain.DifficultyEasy)

	out, err := execute(t, "list", "--filter", "brown fox")

	require.NoError(t, err)
	assert.Contains(t, out, "quick brown fox")
	assert.NotContains(t, out, "slow grey wolf")
}
