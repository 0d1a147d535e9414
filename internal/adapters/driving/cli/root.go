// Package cli implements the cobra command set for the typebank
// binary. Commands hold no business logic; each one validates its
// arguments, calls a driving port and formats the result.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driving"
	"github.com/custodia-labs/typebank-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute runs.
// Commands guard against nil so a partially wired binary fails with a
// clear message instead of a panic.
var (
	practiceService driving.PracticeService
	searchService   driving.SearchService
	libraryService  driving.LibraryService
	indexService    driving.IndexService
	configStore     driven.ConfigStore
)

// verboseFlag enables debug logging on stderr.
var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "typebank",
	Short: "Sentence bank for typing practice",
	Long: `Typebank manages the sentence bank behind a typing-practice app:
add and organise practice sentences, draw random ones by difficulty,
search the bank, and run bulk import/export and maintenance tasks.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose debug output")
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetPracticeService injects the practice service.
func SetPracticeService(s driving.PracticeService) {
	practiceService = s
}

// SetSearchService injects the search service.
func SetSearchService(s driving.SearchService) {
	searchService = s
}

// SetLibraryService injects the library service.
func SetLibraryService(s driving.LibraryService) {
	libraryService = s
}

// SetIndexService injects the index service.
func SetIndexService(s driving.IndexService) {
	indexService = s
}

// SetConfigStore injects the configuration store.
func SetConfigStore(s driven.ConfigStore) {
	configStore = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
