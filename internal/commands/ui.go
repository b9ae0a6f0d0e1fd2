package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todolist/internal/tui"
)

func newUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive todo list",
		Args:  cobra.NoArgs,
		RunE:  withStore(runUI),
	}

	cmd.Flags().StringP("filter", "f", "", "Initial filter: all, active, completed")
	cmd.Flags().StringP("sort", "s", "", "Initial sort: date, priority, category")

	return cmd
}

func runUI(cmd *cobra.Command, args []string, a *app) error {
	filter, sortKey := a.cfg.Filter(), a.cfg.SortKey()
	if cmd.Flags().Lookup("filter") != nil {
		var err error
		filter, sortKey, err = viewFlags(cmd, a)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
			return nil
		}
	}

	return tui.RunListTUI(a.store, filter, sortKey)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "todolist %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
