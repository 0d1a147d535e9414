package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
	"github.com/custodia-labs/typebank-cli/internal/core/services"
)

// writeImportFile writes items as a JSON import document in a temp dir.
func writeImportFile(t *testing.T, items []bankItem) string {
	t.Helper()

	data, err := json.Marshal(items)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// --- import ---

func TestImportCmd_InsertsBatch(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	path := writeImportFile(t, []bankItem{
		{Text: "imported one", Difficulty: "easy"},
		{Text: "imported two", Difficulty: "hard", Category: "code"},
	})

	out, err := execute(t, "import", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 sentences")

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestImportCmd_SourceFlagTagsUntaggedItems(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	path := writeImportFile(t, []bankItem{
		{Text: "untagged", Difficulty: "easy"},
		{Text: "tagged", Difficulty: "easy", Source: "handbook"},
	})

	_, err := execute(t, "import", "--source", "classics", path)

	require.NoError(t, err)
	all, err := store.ExportAll(context.Background())
	require.NoError(t, err)
	sources := map[string]string{}
	for _, s := range all {
		sources[s.Text] = s.Source
	}
	assert.Equal(t, "classics", sources["untagged"])
	assert.Equal(t, "handbook", sources["tagged"])
}

func TestImportCmd_InvalidItemRejectsWholeBatch(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	path := writeImportFile(t, []bankItem{
		{Text: "fine", Difficulty: "easy"},
		{Text: "   ", Difficulty: "easy"},
	})

	_, err := execute(t, "import", path)

	require.Error(t, err)
	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestImportCmd_SkipDuplicates(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	addSentence(t, store, "already here", domain.DifficultyEasy)
	path := writeImportFile(t, []bankItem{
		{Text: "already here", Difficulty: "easy"},
		{Text: "brand new", Difficulty: "easy"},
	})

	out, err := execute(t, "import", "--skip-duplicates", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 sentences (1 skipped)")
}

func TestImportCmd_MalformedFile(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := execute(t, "import", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")
}

// --- export ---

func TestExportCmd_WritesFile(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	addSentence(t, store, "keep me", domain.DifficultyMedium)
	path := filepath.Join(t.TempDir(), "out.json")

	out, err := execute(t, "export", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 sentences")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var items []bankItem
	require.NoError(t, json.Unmarshal(data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "keep me", items[0].Text)
	assert.Equal(t, "medium", items[0].Difficulty)
}

func TestExportCmd_StdoutByDefault(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	addSentence(t, store, "streamed out", domain.DifficultyEasy)

	out, err := execute(t, "export")

	require.NoError(t, err)
	assert.Contains(t, out, `"streamed out"`)
}

func TestExportThenImport_RoundTrip(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	addSentence(t, store, "round trip survivor", domain.DifficultyHard)
	path := filepath.Join(t.TempDir(), "dump.json")

	_, err := execute(t, "export", path)
	require.NoError(t, err)

	out, err := execute(t, "import", "--skip-duplicates", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0 sentences (1 skipped)")
}

// --- reseed ---

func TestReseedCmd_InsertsMissingSeeds(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	SetLibraryService(services.NewLibraryService(store, &stubSeedSource{
		seedFile: &domain.SeedFile{
			Sentences: map[domain.Difficulty][]string{
				domain.DifficultyEasy:   {"seeded easy line"},
				domain.DifficultyMedium: {"seeded medium line"},
			},
		},
	}))

	out, err := execute(t, "reseed")

	require.NoError(t, err)
	assert.Contains(t, out, "Reseeded 2 sentences")

	out, err = execute(t, "reseed")
	require.NoError(t, err)
	assert.Contains(t, out, "Reseeded 0 sentences")
}

func TestReseedCmd_NoSeedDocument(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	SetLibraryService(services.NewLibraryService(store, &stubSeedSource{
		loadErr: domain.ErrNoSeedData,
	}))

	_, err := execute(t, "reseed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no seed document available")
}

// --- wipe ---

func TestWipeCmd_RefusesWithoutForceOffTerminal(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	addSentence(t, store, "survivor", domain.DifficultyEasy)

	_, err := execute(t, "wipe")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestWipeCmd_ForceDeletesEverything(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()
	addSentence(t, store, "one", domain.DifficultyEasy)
	addSentence(t, store, "two", domain.DifficultyHard)

	out, err := execute(t, "wipe", "--force")

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 sentences")

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
