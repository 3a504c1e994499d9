package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	"github.com/manav03panchal/hydrate/internal/errors"
)

// Keys lists the settable configuration keys in display order.
var Keys = []string{
	"storage.backend",
	"storage.path",
	"goal.default_amount",
	"goal.default_unit",
	"stats.window_days",
	"stats.max_streak_days",
	"log.level",
	"log.json",
}

// Get returns the value of key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "storage.backend":
		return c.Storage.Backend, nil
	case "storage.path":
		return c.Storage.Path, nil
	case "goal.default_amount":
		return strconv.FormatFloat(c.Goal.DefaultAmount, 'f', -1, 64), nil
	case "goal.default_unit":
		return c.Goal.DefaultUnit, nil
	case "stats.window_days":
		return strconv.Itoa(c.Stats.WindowDays), nil
	case "stats.max_streak_days":
		return strconv.Itoa(c.Stats.MaxStreakDays), nil
	case "log.level":
		return c.Log.Level, nil
	case "log.json":
		return strconv.FormatBool(c.Log.JSON), nil
	}
	return "", unknownKey(key)
}

// Values returns every key with its current value.
func (c *Config) Values() map[string]string {
	values := make(map[string]string, len(Keys))
	for _, k := range Keys {
		values[k], _ = c.Get(k)
	}
	return values
}

// Set writes key=value to the config file at path (DefaultFile when
// empty), creating the file and its directory if needed. Nothing is
// written if the resulting config does not validate.
func Set(path, key, value string) (*Config, error) {
	if !isKey(key) {
		return nil, unknownKey(key)
	}
	if path == "" {
		path = DefaultFile()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewValidationErrorWithValue("config", path, "cannot read config file", err)
		}
	}
	v.Set(key, value)

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.NewValidationErrorWithValue(key, value, "invalid value", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.NewSystemErrorWithOp("write config", "cannot create config directory", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return nil, errors.NewSystemErrorWithOp("write config", "cannot write config file", err)
	}
	cfg.File = path
	return cfg, nil
}

func isKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

func unknownKey(key string) error {
	return errors.NewValidationErrorWithValue("key", key, "unknown config key", nil).
		WithSuggestion("Run 'hydrate config get' to list the keys.")
}
