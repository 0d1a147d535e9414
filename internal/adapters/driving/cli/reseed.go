package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

var reseedCmd = &cobra.Command{
	Use:   "reseed",
	Short: "Re-run the seed document against the bank",
	Long: `Re-run the bundled seed document, inserting any seed sentences that
are missing from the bank. Sentences already present are skipped, so
reseeding is safe to repeat. Use it to restore accidentally deleted
starter content.`,
	Args: cobra.NoArgs,
	RunE: runReseed,
}

func init() {
	rootCmd.AddCommand(reseedCmd)
}

func runReseed(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	inserted, err := libraryService.Reseed(context.Background())
	if errors.Is(err, domain.ErrNoSeedData) {
		return errors.New("no seed document available (set seed.path in config or place seed.json in the app directory)")
	}
	if err != nil {
		return fmt.Errorf("reseed failed: %w", err)
	}

	cmd.Printf("Reseeded %d sentences\n", inserted)
	return nil
}
