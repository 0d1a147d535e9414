package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the sentence bank",
	Long: `Search the bank with two-tier matching: word-prefix search through
the full-text index first, then a substring scan when the index has
no hits. Search never fails; at worst it finds nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default from config, then 20)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	limit := searchLimit
	if limit <= 0 && configStore != nil {
		limit = configStore.GetInt(driven.ConfigKeySearchLimit)
	}

	results := searchService.Search(context.Background(), args[0], limit)
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for _, r := range results {
		cmd.Printf("%6d  [%s/%s]  %s\n", r.ID, r.Difficulty, r.Category, r.Text)
	}
	return nil
}
