package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todolist/internal/models"
	"github.com/balkashynov/todolist/internal/parser"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [task description]",
		Short: "Add a new task",
		Long: `Add a new task with optional priority and category.

Quick syntax:
  @category   - Category (default "General")
  +priority   - Priority (low/medium/high or 1/2/3, default medium)

Example:
  todolist add "Buy milk @Errands +high"`,
		Args: cobra.ArbitraryArgs,
		RunE: withStore(runAdd),
	}

	cmd.Flags().StringP("priority", "", "", "Priority: low, medium, high, or 1-3")
	cmd.Flags().StringP("category", "c", "", "Category name")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string, a *app) error {
	out := cmd.OutOrStdout()

	// Explicit flags take precedence over quick syntax. With --priority set,
	// +tokens are plain text.
	input := strings.Join(args, " ")
	flagPriority, _ := cmd.Flags().GetString("priority")

	var priority models.Priority
	var parsed parser.ParsedTodo
	if flagPriority != "" {
		p, err := models.ParsePriority(flagPriority)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return nil
		}
		priority = p
		parsed = parser.ParseTodoCategory(input)
	} else {
		parsed = parser.ParseTodo(input)
		if len(parsed.Errors) > 0 {
			fmt.Fprintf(out, "⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
			return nil
		}
		priority = parsed.Priority
	}

	category := parsed.Category
	if flagCategory, _ := cmd.Flags().GetString("category"); flagCategory != "" {
		category = flagCategory
	}

	todo, ok := a.store.Add(parsed.Text, priority, category)
	if !ok {
		fmt.Fprintln(out, "Nothing added: task text is empty.")
		return nil
	}

	fmt.Fprintf(out, "Created task %s: %s\n", todo.ShortID(), todo.Text)
	fmt.Fprintf(out, "  Priority: %s\n", todo.Priority)
	fmt.Fprintf(out, "  Category: %s\n", todo.Category)
	return nil
}
