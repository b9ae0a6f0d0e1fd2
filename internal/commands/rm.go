package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm [task-id]",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE:    withStore(runRm),
	}
}

func runRm(cmd *cobra.Command, args []string, a *app) error {
	id, ok := resolveID(cmd, a, args[0])
	if !ok {
		return nil
	}

	todo, _ := a.store.Get(id)
	a.store.Delete(id)

	fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Deleted task %s: %s\n", todo.ShortID(), todo.Text)
	return nil
}
