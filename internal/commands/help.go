package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Show comprehensive help for todolist",
		Long:  `Display detailed help for all todolist commands and flags.`,
		Run: func(cmd *cobra.Command, args []string) {
			showCustomHelp(cmd.OutOrStdout())
		},
	}
}

func showCustomHelp(out io.Writer) {
	fmt.Fprint(out, `
todolist - a terminal todo list

COMMANDS:

  add <task>              Create a new task
    --priority            Priority: low|medium|high (default medium)
    -c, --category        Category (default General)

    Quick syntax:
      @category     Set category
      +priority     Set priority (low/medium/high)

    Example:
      todolist add "Buy milk @Errands +high"

  ls                      List tasks
    -f, --filter          all|active|completed
    -s, --sort            date|priority|category
    --json                JSON output

  done <id>               Toggle a task between completed and active
  edit <id> <text>        Change the text of a task
  rm <id>                 Delete a task
  stats                   Show totals and categories
  reset --yes             Remove every task

  ui                      Interactive list (also the default)
    Keys:
      ↑/↓ or j/k    Navigate tasks
      ←/→           Change page
      space         Toggle completed
      a             Add (quick syntax works here too)
      e             Edit selected task
      d             Delete selected task
      f             Cycle filter
      s             Cycle sort
      esc/q         Quit

  version                 Show version
  help                    Show this help

GLOBAL FLAGS:
  --config <file>         Config file (default ~/.config/todolist/config.yaml)
  --db <file>             Database file (default ~/.todolist/todolist.db)
  --log-level <level>     debug|info|warn|error

Ids may be shortened to any unique prefix, e.g. the 8 characters 'ls' shows.

`)
}
