package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

var (
	updateDifficulty string
	updateCategory   string
)

var updateCmd = &cobra.Command{
	Use:   "update <id> [text]",
	Short: "Replace a sentence's text, difficulty and category",
	Args:  cobra.ExactArgs(2),
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateDifficulty, "difficulty", "d", "", "difficulty level (easy, medium, hard; default medium)")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "category label (default general)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid sentence id %q", args[0])
	}

	difficulty, err := domain.ParseDifficulty(updateDifficulty)
	if err != nil {
		return fmt.Errorf("unknown difficulty %q (expected easy, medium or hard)", updateDifficulty)
	}

	affected, err := libraryService.Update(context.Background(), id, args[1], difficulty, updateCategory)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	if !affected {
		cmd.Printf("Sentence %d not updated (missing id or invalid fields)\n", id)
		return nil
	}

	cmd.Printf("Updated sentence %d\n", id)
	return nil
}
