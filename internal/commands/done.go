package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "done [task-id]",
		Aliases: []string{"toggle", "undone"},
		Short:   "Toggle a task between completed and active",
		Long:    "Toggle a task between completed and active. The id may be the short id shown by 'todolist ls'.",
		Args:    cobra.ExactArgs(1),
		RunE:    withStore(runDone),
	}
}

func runDone(cmd *cobra.Command, args []string, a *app) error {
	out := cmd.OutOrStdout()

	id, ok := resolveID(cmd, a, args[0])
	if !ok {
		return nil
	}

	a.store.Toggle(id)
	todo, _ := a.store.Get(id)

	if todo.Completed {
		fmt.Fprintf(out, "✅ Marked task %s as done: %s\n", todo.ShortID(), todo.Text)
	} else {
		fmt.Fprintf(out, "↩️  Marked task %s back to active: %s\n", todo.ShortID(), todo.Text)
	}
	return nil
}
