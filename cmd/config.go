package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/config"
	"github.com/manav03panchal/hydrate/internal/output"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg", "settings"},
	Short:   "Manage application configuration",
	Long: `View and modify settings stored in config.yaml. Environment variables
(HYDRATE_GOAL_DEFAULT_AMOUNT, HYDRATE_DATABASE, ...) override the file.

Examples:
  hydrate config get
  hydrate config get goal.default_amount
  hydrate config set goal.default_unit ml
  hydrate config set storage.backend sqlite
  hydrate config path`,
}

// configGetCmd shows configuration values.
var configGetCmd = &cobra.Command{
	Use:   "get [KEY]",
	Short: "Get configuration value",
	Long: `Show one effective configuration value, or all of them.

Keys:
  storage.backend        badger or sqlite
  storage.path           Database location (":memory:" for a throwaway store)
  goal.default_amount    Goal used before one is set
  goal.default_unit      oz, ml or cups
  stats.window_days      Days covered by the daily average
  stats.max_streak_days  Longest streak that is counted
  log.level              debug, info, warn or error
  log.json               Log as JSON`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: config.Keys,
	RunE:      runConfigGet,
}

// configSetCmd writes a configuration value.
var configSetCmd = &cobra.Command{
	Use:       "set KEY VALUE",
	Short:     "Set configuration value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE:      runConfigSet,
}

// configPathCmd prints the config file location.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where configuration and data live",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		value, err := ctx.Config.Get(args[0])
		if err != nil {
			return err
		}
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]string{"key": args[0], "value": value})
		}
		ctx.Formatter.Println(value)
		return nil
	}

	values := ctx.Config.Values()
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(values)
	}
	rows := make([]output.TableRow, 0, len(config.Keys))
	for _, k := range config.Keys {
		rows = append(rows, output.TableRow{Columns: []string{k, values[k]}})
	}
	ctx.CLIFormatter().PrintTable([]string{"KEY", "VALUE"}, rows)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Set(flagConfig, args[0], args[1])
	if err != nil {
		return err
	}
	value, _ := cfg.Get(args[0])

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{
			"status": "updated",
			"key":    args[0],
			"value":  value,
			"file":   cfg.File,
		})
	}
	ctx.CLIFormatter().Success(args[0] + " = " + value)
	ctx.CLIFormatter().Muted("Saved to " + cfg.File)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	file := ctx.Config.File
	if file == "" {
		file = config.DefaultFile()
	}
	data := ctx.Path
	if data == "" {
		data = "(in memory)"
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{
			"config":  file,
			"backend": ctx.Backend,
			"data":    data,
		})
	}
	ctx.Formatter.Printf("Config:  %s\n", file)
	ctx.Formatter.Printf("Backend: %s\n", ctx.Backend)
	ctx.Formatter.Printf("Data:    %s\n", data)
	return nil
}
