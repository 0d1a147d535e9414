package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// bankItem is the JSON shape of one sentence in import/export files.
type bankItem struct {
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category,omitempty"`
	Source     string `json:"source,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Dump every sentence as JSON",
	Long: `Dump the whole bank as a JSON array, to a file or stdout.

The dump feeds straight back into 'typebank import'; importing it
with --skip-duplicates inserts nothing new.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	sentences, err := libraryService.Export(context.Background())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	items := make([]bankItem, len(sentences))
	for i, s := range sentences {
		items[i] = bankItem{
			Text:       s.Text,
			Difficulty: s.Difficulty.String(),
			Category:   s.Category,
			Source:     s.Source,
		}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}

	if len(args) == 0 {
		cmd.Println(string(data))
		return nil
	}

	if err := os.WriteFile(args[0], append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	cmd.Printf("Exported %d sentences to %s\n", len(items), args[0])
	return nil
}

// toSentences converts wire items back to domain sentences.
func toSentences(items []bankItem) []domain.Sentence {
	sentences := make([]domain.Sentence, len(items))
	for i, item := range items {
		sentences[i] = domain.Sentence{
			Text:       item.Text,
			Difficulty: domain.Difficulty(item.Difficulty),
			Category:   item.Category,
			Source:     item.Source,
		}
	}
	return sentences
}
