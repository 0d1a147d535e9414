package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete every sentence in the bank",
	Long: `Delete every sentence and its search index entries.

This is irreversible. On a terminal the command asks for confirmation
unless --force is given; off a terminal --force is required.`,
	Args: cobra.NoArgs,
	RunE: runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeForce, "force", false, "skip the confirmation prompt")
	rootCmd.AddCommand(wipeCmd)
}

func runWipe(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	if !wipeForce {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("refusing to wipe without --force on a non-interactive session")
		}

		cmd.Print("Delete ALL sentences? This cannot be undone. Type 'yes' to confirm: ")
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if strings.TrimSpace(answer) != "yes" {
			cmd.Println("Aborted.")
			return nil
		}
	}

	removed, err := libraryService.Wipe(context.Background())
	if err != nil {
		return fmt.Errorf("wipe failed: %w", err)
	}

	cmd.Printf("Deleted %d sentences\n", removed)
	return nil
}
