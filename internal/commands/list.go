package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todolist/internal/derive"
	"github.com/balkashynov/todolist/internal/models"
	"github.com/balkashynov/todolist/internal/tui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tasks",
		Long:    "List tasks sorted by date, priority or category, optionally showing only active or completed ones",
		Args:    cobra.NoArgs,
		RunE:    withStore(runList),
	}

	cmd.Flags().StringP("filter", "f", "", "Filter: all, active, completed (default from config)")
	cmd.Flags().StringP("sort", "s", "", "Sort by: date, priority, category (default from config)")
	cmd.Flags().Bool("json", false, "Output as JSON")

	return cmd
}

// viewFlags reads --filter and --sort, falling back to the configured view
func viewFlags(cmd *cobra.Command, a *app) (models.Filter, models.SortKey, error) {
	filter := a.cfg.Filter()
	if raw, _ := cmd.Flags().GetString("filter"); raw != "" {
		f, err := models.ParseFilter(raw)
		if err != nil {
			return "", "", err
		}
		filter = f
	}

	sortKey := a.cfg.SortKey()
	if raw, _ := cmd.Flags().GetString("sort"); raw != "" {
		k, err := models.ParseSortKey(raw)
		if err != nil {
			return "", "", err
		}
		sortKey = k
	}

	return filter, sortKey, nil
}

func runList(cmd *cobra.Command, args []string, a *app) error {
	out := cmd.OutOrStdout()

	filter, sortKey, err := viewFlags(cmd, a)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return nil
	}

	view := a.store.View(filter, sortKey)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return renderListJSON(out, view)
	}
	renderListTable(out, view)
	return nil
}

// renderListJSON outputs the view as JSON
func renderListJSON(out io.Writer, view derive.View) error {
	type JsonTodo struct {
		ID        string    `json:"id"`
		Text      string    `json:"text"`
		Completed bool      `json:"completed"`
		Priority  string    `json:"priority"`
		Category  string    `json:"category"`
		CreatedAt time.Time `json:"createdAt"`
	}

	type ListResult struct {
		Filter     string        `json:"filter"`
		Sort       string        `json:"sort"`
		Totals     derive.Totals `json:"totals"`
		Categories []string      `json:"categories"`
		Todos      []JsonTodo    `json:"todos"`
	}

	result := ListResult{
		Filter:     string(view.Filter),
		Sort:       string(view.Sort),
		Totals:     view.Totals,
		Categories: view.Categories,
		Todos:      make([]JsonTodo, 0, len(view.Todos)),
	}
	for _, todo := range view.Todos {
		result.Todos = append(result.Todos, JsonTodo{
			ID:        todo.ID,
			Text:      todo.Text,
			Completed: todo.Completed,
			Priority:  todo.Priority.String(),
			Category:  todo.Category,
			CreatedAt: todo.CreatedAt,
		})
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	fmt.Fprintln(out, string(jsonBytes))
	return nil
}

// renderListTable outputs the view as a formatted table
func renderListTable(out io.Writer, view derive.View) {
	if len(view.Todos) == 0 {
		switch view.Filter {
		case models.FilterCompleted:
			fmt.Fprintln(out, "No completed tasks yet.")
		case models.FilterActive:
			fmt.Fprintln(out, "No active tasks.")
		default:
			fmt.Fprintln(out, "No tasks yet. Use 'todolist add \"task description\"' to create your first task.")
		}
	} else {
		fmt.Fprintf(out, "%-8s %-4s %-38s %-8s %-14s %s\n", "ID", "DONE", "TASK", "PRIORITY", "CATEGORY", "CREATED")
		fmt.Fprintln(out, strings.Repeat("-", 88))

		for _, todo := range view.Todos {
			done := ""
			if todo.Completed {
				done = "✓"
			}

			fmt.Fprintf(out, "%-8s %-4s %-38s %-8s %-14s %s\n",
				todo.ShortID(),
				done,
				tui.Truncate(todo.Text, 38),
				todo.Priority,
				tui.Truncate(todo.Category, 14),
				todo.CreatedAt.Local().Format("02/01/2006"))
		}
	}

	fmt.Fprintf(out, "\nTotal: %d · Completed: %d · Remaining: %d\n",
		view.Totals.Total, view.Totals.Completed, view.Totals.Remaining)
}
