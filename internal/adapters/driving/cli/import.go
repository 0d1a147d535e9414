package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	importSkipDuplicates bool
	importSource         string
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk-insert sentences from a JSON file",
	Long: `Insert a batch of sentences from a JSON array of objects with
"text", "difficulty" and optional "category" and "source" fields.

The whole batch commits or none of it does. With --skip-duplicates,
sentences whose exact text is already stored are silently skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importSkipDuplicates, "skip-duplicates", false, "skip sentences whose exact text already exists")
	importCmd.Flags().StringVar(&importSource, "source", "", "provenance tag for items that carry none")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	var items []bankItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}

	sentences := toSentences(items)
	if importSource != "" {
		for i := range sentences {
			if sentences[i].Source == "" {
				sentences[i].Source = importSource
			}
		}
	}

	inserted, err := libraryService.Import(context.Background(), sentences, importSkipDuplicates)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	skipped := len(sentences) - int(inserted)
	if skipped > 0 {
		cmd.Printf("Imported %d sentences (%d skipped)\n", inserted, skipped)
	} else {
		cmd.Printf("Imported %d sentences\n", inserted)
	}
	return nil
}
