package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listPage   int
	listLimit  int
	listFilter string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse the bank page by page",
	Long: `Browse stored sentences in id order with offset pagination.

An optional filter narrows the listing with the same substring
semantics as the search fallback tier: every word of the filter must
appear somewhere in the text.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number (1-based)")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "rows per page")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "substring filter")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	page, err := libraryService.List(context.Background(), listPage, listLimit, listFilter)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if page.Total == 0 {
		cmd.Println("No sentences found.")
		return nil
	}

	for _, s := range page.Data {
		cmd.Printf("%6d  [%s/%s]  %s\n", s.ID, s.Difficulty, s.Category, s.Text)
	}

	pages := (page.Total + int64(listLimit) - 1) / int64(listLimit)
	cmd.Printf("\nPage %d of %d (%d sentences)\n", listPage, pages, page.Total)
	return nil
}
