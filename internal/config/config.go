// Package config loads Hydrate's configuration from an optional YAML file
// and HYDRATE_* environment variables.
package config

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/gookit/validate"
	"github.com/spf13/viper"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
)

const (
	// AppName names the config directory.
	AppName = "hydrate"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "HYDRATE"

	// EnvDatabase overrides the storage path. ":memory:" selects an
	// in-memory database.
	EnvDatabase = "HYDRATE_DATABASE"
)

// Storage backends.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// Config holds all configuration values.
type Config struct {
	// File is the config file that was read, if any.
	File string `mapstructure:"-"`

	Storage StorageConfig `mapstructure:"storage"`
	Goal    GoalConfig    `mapstructure:"goal"`
	Stats   StatsConfig   `mapstructure:"stats"`
	Log     LogConfig     `mapstructure:"log"`
}

// StorageConfig selects the database.
type StorageConfig struct {
	// Backend is badger or sqlite.
	// Default: badger
	Backend string `mapstructure:"backend" validate:"required|in:badger,sqlite"`

	// Path is the badger directory or sqlite file. Empty uses the XDG data
	// directory.
	Path string `mapstructure:"path"`
}

// GoalConfig is the goal reported before the user sets one.
type GoalConfig struct {
	// Default: 64
	DefaultAmount float64 `mapstructure:"default_amount" validate:"required|gt:0"`

	// Default: oz
	DefaultUnit string `mapstructure:"default_unit" validate:"required|in:oz,ml,cups"`
}

// StatsConfig sizes the statistics windows.
type StatsConfig struct {
	// WindowDays is how many days averageDaily covers.
	// Default: 30
	WindowDays int `mapstructure:"window_days" validate:"required|min:1"`

	// MaxStreakDays caps the streak walk.
	// Default: 365
	MaxStreakDays int `mapstructure:"max_streak_days" validate:"required|min:1"`
}

// LogConfig configures the slog logger.
type LogConfig struct {
	// Default: warn
	Level string `mapstructure:"level" validate:"required|in:debug,info,warn,warning,error"`
	JSON  bool   `mapstructure:"json"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendBadger,
		},
		Goal: GoalConfig{
			DefaultAmount: model.DefaultGoalAmount,
			DefaultUnit:   string(model.DefaultGoalUnit),
		},
		Stats: StatsConfig{
			WindowDays:    30,
			MaxStreakDays: 365,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultFile returns the config file looked up when --config is not given.
func DefaultFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load reads the config file at path (or the default location when path
// is empty), applies environment overrides and validates the result. A
// missing default file is not an error; a missing explicit one is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// HYDRATE_DATABASE predates the storage section.
	if err := v.BindEnv("storage.path", EnvDatabase, "HYDRATE_STORAGE_PATH"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewValidationErrorWithValue("config", path, "cannot read config file", err).
				WithSuggestion("Check the path passed to --config.")
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewValidationErrorWithValue("config", DefaultFile(), "cannot read config file", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.NewValidationErrorWithValue("config", v.ConfigFileUsed(), "unable to decode config", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("goal.default_amount", d.Goal.DefaultAmount)
	v.SetDefault("goal.default_unit", d.Goal.DefaultUnit)
	v.SetDefault("stats.window_days", d.Stats.WindowDays)
	v.SetDefault("stats.max_streak_days", d.Stats.MaxStreakDays)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
}

// Validate checks the struct tags and reports the first failure as a
// ValidationError.
func (c *Config) Validate() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.Goal.DefaultUnit = strings.ToLower(strings.TrimSpace(c.Goal.DefaultUnit))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	v := validate.Struct(c)
	if v.Validate() {
		return nil
	}
	field, msg := firstError(v.Errors)
	return errors.NewValidationError("config."+field, msg).
		WithSuggestion("Fix the value in " + DefaultFile() + " or the matching HYDRATE_* variable.")
}

// firstError picks the alphabetically first failing field so the message
// is stable across runs.
func firstError(errs validate.Errors) (string, string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return "", errs.One()
	}
	sort.Strings(fields)
	return strings.ToLower(fields[0]), errs.FieldOne(fields[0])
}

// DefaultGoal returns the configured fallback goal.
func (c *Config) DefaultGoal() *model.DailyGoal {
	return &model.DailyGoal{
		ID:           model.DefaultGoalID,
		TargetAmount: c.Goal.DefaultAmount,
		Unit:         model.Unit(c.Goal.DefaultUnit),
	}
}

// InMemory reports whether the storage path selects an in-memory database.
func (c *Config) InMemory() bool {
	return c.Storage.Path == ":memory:"
}
