package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todolist/internal/models"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts and categories",
		Args:  cobra.NoArgs,
		RunE:  withStore(runStats),
	}
}

func runStats(cmd *cobra.Command, args []string, a *app) error {
	out := cmd.OutOrStdout()
	view := a.store.View(models.FilterAll, models.SortByCategory)

	fmt.Fprintf(out, "Total:     %d\n", view.Totals.Total)
	fmt.Fprintf(out, "Completed: %d\n", view.Totals.Completed)
	fmt.Fprintf(out, "Remaining: %d\n", view.Totals.Remaining)

	if len(view.Categories) > 0 {
		fmt.Fprintf(out, "Categories: %s\n", strings.Join(view.Categories, ", "))
	}
	return nil
}
