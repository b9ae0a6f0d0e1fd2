package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every task from storage",
		Args:  cobra.NoArgs,
		RunE:  withStore(runReset),
	}

	cmd.Flags().Bool("yes", false, "Confirm removing all tasks")

	return cmd
}

func runReset(cmd *cobra.Command, args []string, a *app) error {
	out := cmd.OutOrStdout()
	count := a.store.Len()

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Fprintf(out, "This removes all %d task(s). Run 'todolist reset --yes' to confirm.\n", count)
		return nil
	}

	if err := a.repo.Clear(); err != nil {
		return fmt.Errorf("failed to reset tasks: %w", err)
	}

	fmt.Fprintf(out, "🗑️  Removed %d task(s).\n", count)
	return nil
}
