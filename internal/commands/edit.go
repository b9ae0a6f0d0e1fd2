package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <task_id> <new text>",
		Short: "Change the text of a task",
		Long: `Change the text of an existing task.

Priority, category and creation date stay as they are.

Usage:
  todolist edit 3f2a91c0 "Buy oat milk"`,
		Args: cobra.MinimumNArgs(2),
		RunE: withStore(runEdit),
	}
}

func runEdit(cmd *cobra.Command, args []string, a *app) error {
	out := cmd.OutOrStdout()

	id, ok := resolveID(cmd, a, args[0])
	if !ok {
		return nil
	}

	if !a.store.Edit(id, strings.Join(args[1:], " ")) {
		fmt.Fprintln(out, "Nothing changed: task text can't be empty.")
		return nil
	}

	todo, _ := a.store.Get(id)
	fmt.Fprintf(out, "✏️  Updated task %s: %s\n", todo.ShortID(), todo.Text)
	return nil
}
