package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

var randomDifficulty string

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print one random sentence",
	Long: `Print one randomly drawn sentence from a difficulty partition.

The draw is approximately uniform and never scans the whole bank, so
it stays fast at any size.`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().StringVarP(&randomDifficulty, "difficulty", "d", "", "difficulty level (easy, medium, hard; default medium)")
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, _ []string) error {
	if practiceService == nil {
		return errors.New("practice service not configured")
	}

	difficulty, err := domain.ParseDifficulty(randomDifficulty)
	if err != nil {
		return fmt.Errorf("unknown difficulty %q (expected easy, medium or hard)", randomDifficulty)
	}

	sentence := practiceService.RandomSentence(context.Background(), difficulty)
	if sentence == nil {
		cmd.Printf("No %s sentence available.\n", difficulty)
		return nil
	}

	cmd.Println(sentence.Text)
	return nil
}
