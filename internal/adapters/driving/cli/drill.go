package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driven"
)

var (
	drillDifficulty string
	drillCount      int
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Print a batch of sentences for a practice drill",
	Long: `Print a contiguous batch of sentences from a random position in a
difficulty partition. The batch gives positional variety, not an
independent random sample.`,
	Args: cobra.NoArgs,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().StringVarP(&drillDifficulty, "difficulty", "d", "", "difficulty level (easy, medium, hard; default medium)")
	drillCmd.Flags().IntVarP(&drillCount, "count", "n", 0, "batch size (default from config, then 10)")
	rootCmd.AddCommand(drillCmd)
}

func runDrill(cmd *cobra.Command, _ []string) error {
	if practiceService == nil {
		return errors.New("practice service not configured")
	}

	difficulty, err := domain.ParseDifficulty(drillDifficulty)
	if err != nil {
		return fmt.Errorf("unknown difficulty %q (expected easy, medium or hard)", drillDifficulty)
	}

	count := drillCount
	if count <= 0 && configStore != nil {
		count = configStore.GetInt(driven.ConfigKeyPracticeBatch)
	}

	batch := practiceService.Drill(context.Background(), difficulty, count)
	if len(batch) == 0 {
		cmd.Printf("No %s sentences available.\n", difficulty)
		return nil
	}

	for _, sentence := range batch {
		cmd.Println(sentence.Text)
	}
	return nil
}
