package cli

import (
	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice-system",
		Short: "Practice problem service with server-side grading",
	}
	cmd.AddCommand(newServerCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}
