package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

var (
	addDifficulty string
	addCategory   string
	addSource     string
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a sentence to the bank",
	Long: `Add one practice sentence to the bank.

The sentence becomes available to random draws, drills and search
immediately.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addDifficulty, "difficulty", "d", "", "difficulty level (easy, medium, hard; default medium)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "category label (default general)")
	addCmd.Flags().StringVar(&addSource, "source", domain.SourceManual, "provenance tag")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	difficulty, err := domain.ParseDifficulty(addDifficulty)
	if err != nil {
		return fmt.Errorf("unknown difficulty %q (expected easy, medium or hard)", addDifficulty)
	}

	id, err := libraryService.Add(context.Background(), args[0], difficulty, addCategory, addSource)
	if errors.Is(err, domain.ErrInvalidInput) {
		return fmt.Errorf("sentence rejected: %w", err)
	}
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}

	cmd.Printf("Added sentence %d\n", id)
	return nil
}
