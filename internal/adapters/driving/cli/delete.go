package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a sentence from the bank",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid sentence id %q", args[0])
	}

	affected, err := libraryService.Delete(context.Background(), id)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	if !affected {
		cmd.Printf("Sentence %d not found\n", id)
		return nil
	}

	cmd.Printf("Deleted sentence %d\n", id)
	return nil
}
