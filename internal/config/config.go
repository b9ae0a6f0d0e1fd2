package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/balkashynov/todolist/internal/models"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// DatabaseConfig locates the local database file.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// StorageConfig names the slot the todo collection lives in.
type StorageConfig struct {
	Key string `mapstructure:"key" yaml:"key"`
}

// DefaultsConfig holds the values new todos get when none are given.
type DefaultsConfig struct {
	Priority string `mapstructure:"priority" yaml:"priority"`
	Category string `mapstructure:"category" yaml:"category"`
}

// ViewConfig holds the initial filter and sort of list views.
type ViewConfig struct {
	Filter string `mapstructure:"filter" yaml:"filter"`
	Sort   string `mapstructure:"sort" yaml:"sort"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Config is the top-level application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
	View     ViewConfig     `mapstructure:"view" yaml:"view"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// DefaultConfigPath returns ~/.config/todolist/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "todolist", "config.yaml")
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "todolist.db")
	}
	return filepath.Join(home, ".todolist", "todolist.db")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", defaultDatabasePath())
	v.SetDefault("storage.key", "todos")
	v.SetDefault("defaults.priority", "medium")
	v.SetDefault("defaults.category", models.DefaultCategory)
	v.SetDefault("view.filter", string(models.FilterAll))
	v.SetDefault("view.sort", string(models.SortByDate))
	v.SetDefault("log.level", "warn")
}

// Load reads configuration from the YAML file at path, then applies
// TODOLIST_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("todolist")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every enumerated value is known.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("%w: database.path is empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return fmt.Errorf("%w: storage.key is empty", ErrInvalidConfig)
	}
	if _, err := models.ParsePriority(c.Defaults.Priority); err != nil {
		return fmt.Errorf("%w: defaults.priority: %v", ErrInvalidConfig, err)
	}
	if _, err := models.ParseFilter(c.View.Filter); err != nil {
		return fmt.Errorf("%w: view.filter: %v", ErrInvalidConfig, err)
	}
	if _, err := models.ParseSortKey(c.View.Sort); err != nil {
		return fmt.Errorf("%w: view.sort: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// DefaultPriority returns the parsed default priority, medium if invalid.
func (c *Config) DefaultPriority() models.Priority {
	p, err := models.ParsePriority(c.Defaults.Priority)
	if err != nil {
		return models.PriorityMedium
	}
	return p
}

// Filter returns the parsed initial filter, all if invalid.
func (c *Config) Filter() models.Filter {
	f, err := models.ParseFilter(c.View.Filter)
	if err != nil {
		return models.FilterAll
	}
	return f
}

// SortKey returns the parsed initial sort key, date if invalid.
func (c *Config) SortKey() models.SortKey {
	k, err := models.ParseSortKey(c.View.Sort)
	if err != nil {
		return models.SortByDate
	}
	return k
}
