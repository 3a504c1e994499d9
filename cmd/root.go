// Package cmd provides the CLI commands for Hydrate.
//
// Hydrate - A command-line hydration tracker
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/output"
	"github.com/manav03panchal/hydrate/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagConfig string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// stdout receives command output.
var stdout io.Writer = os.Stdout

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hydrate",
	Short: "Track your daily water intake",
	Long: `Hydrate is a command-line hydration tracker. Log what you drink, watch
your progress toward a daily goal and keep your streak going.

Examples:
  hydrate add 16oz
  hydrate add 12 oz coffee at 9am
  hydrate quick 8
  hydrate today
  hydrate history last week
  hydrate goal set 80oz
  hydrate stats`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion, help and version (but allow __complete for dynamic completions)
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}

		opts := runtime.DefaultOptions()
		opts.Format = output.ParseFormat(flagFormat)
		opts.ColorMode = output.ParseColorMode(flagColor)
		opts.Debug = flagDebug
		opts.ConfigFile = flagConfig
		opts.Writer = stdout

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			err := ctx.Close()
			ctx = nil
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show today's progress
		return runToday(cmd, args)
	},
}

// Execute runs the root command. Errors are printed by Die.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		Die(err)
		return err
	}
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file (default: $XDG_CONFIG_HOME/hydrate/config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("hydrate %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
		cmd.Println("")
		cmd.Println("Licensed under SEGV License v1.0")
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError(runtime.ErrorStatus(err), err.Error(), runtime.GetSuggestion(err))
	} else if output.ParseFormat(flagFormat) == output.FormatJSON {
		output.NewJSONFormatter(output.NewFormatter()).PrintError(runtime.ErrorStatus(err), err.Error(), runtime.GetSuggestion(err))
	} else if flagDebug {
		os.Stderr.WriteString(runtime.FormatError(err, true))
	} else {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err, false) + "\n")
	}
	if ctx != nil {
		ctx.Close()
	}
	os.Exit(1)
}
