package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synthbank-dev/synthbank/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with both generators registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "synthbank",
		Short:   "Synthetic banking dataset generator",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newClientsCommand())
	rootCmd.AddCommand(newTransactionsCommand())

	return rootCmd
}
