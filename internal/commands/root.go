package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todolist/internal/config"
	"github.com/balkashynov/todolist/internal/db"
	"github.com/balkashynov/todolist/internal/logging"
	"github.com/balkashynov/todolist/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is everything a command needs once config and storage are open
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *db.DB
	repo   *db.TodoRepo
	store  *store.Store
}

func (a *app) Close() error {
	return a.db.Close()
}

// openApp loads config, applies flag overrides and loads the todo store
func openApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)

	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened database", "path", cfg.Database.Path)

	repo := db.NewTodoRepo(database.Slots(), cfg.Storage.Key, logger)
	s := store.New(repo.Load(), repo,
		store.WithLogger(logger),
		store.WithDefaults(cfg.Defaults.Category, cfg.DefaultPriority()),
	)

	return &app{cfg: cfg, logger: logger, db: database, repo: repo, store: s}, nil
}

// withStore wraps a command function to open config and storage first
func withStore(fn func(*cobra.Command, []string, *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() {
			if err := a.Close(); err != nil {
				a.logger.Warn("failed to close database", "error", err)
			}
		}()
		return fn(cmd, args, a)
	}
}

// resolveID maps a full or short id argument to a todo id, printing an error when it can't
func resolveID(cmd *cobra.Command, a *app, ref string) (string, bool) {
	id, err := a.store.Resolve(ref)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		return "", false
	}
	return id, true
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todolist",
		Short: "A terminal todo list",
		Long: `todolist keeps a prioritized, categorized todo list on your machine.
Run it without arguments for the interactive list, or use the subcommands.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          withStore(runUI),
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/todolist/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Database file (default ~/.todolist/todolist.db)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDoneCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newUICmd())
	rootCmd.SetHelpCommand(newHelpCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
