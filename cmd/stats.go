package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/errors"
)

var statsResetFlagForce bool

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks and averages",
	Long: `Show the current and longest streak of days that met the goal, the
total intake and the average over the last 30 days. Amounts are in the
current goal's unit.

Examples:
  hydrate stats
  hydrate stats reset --force`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

// statsResetCmd zeroes the stats snapshot.
var statsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset statistics",
	Long: `Zero the streak and intake statistics. Entries and goals are kept, so
the next change recomputes everything except the longest streak.`,
	Args: cobra.NoArgs,
	RunE: runStatsReset,
}

func init() {
	statsResetCmd.Flags().BoolVar(&statsResetFlagForce, "force", false, "Skip confirmation")

	statsCmd.AddCommand(statsResetCmd)
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	// Streaks depend on the current day, so refresh before showing.
	stats, err := ctx.Tracker.RefreshStats()
	if err != nil {
		return err
	}
	goal, err := ctx.Tracker.Goals.CurrentGoal()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStats(stats, goal.Unit)
	}
	ctx.CLIFormatter().PrintStats(stats, goal.Unit)
	return nil
}

func runStatsReset(cmd *cobra.Command, args []string) error {
	if !statsResetFlagForce {
		return errors.NewValidationError("stats reset", "confirmation required").
			WithSuggestion("Run 'hydrate stats reset --force' to reset your statistics.")
	}

	stats, err := ctx.Tracker.Stats.Reset()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status": "reset",
			"stats":  stats,
		})
	}
	ctx.CLIFormatter().Success("Statistics reset")
	return nil
}
