package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/model"
	"github.com/manav03panchal/hydrate/internal/parser"
)

// goalPresets are the common daily targets, in ounces.
var goalPresets = []string{"48", "64", "80", "96", "128"}

// goalCmd represents the goal command.
var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"goals"},
	Short:   "Show or set your daily goal",
	Long: `Show the current daily goal. Without a stored goal the configured
default (64 oz unless changed) applies.

Examples:
  hydrate goal
  hydrate goal set 80
  hydrate goal set 2000ml
  hydrate goal set 10 cups
  hydrate goal history`,
	Args: cobra.NoArgs,
	RunE: runGoal,
}

// goalSetCmd sets today's goal.
var goalSetCmd = &cobra.Command{
	Use:   "set AMOUNT [UNIT]",
	Short: "Set the daily goal",
	Long: `Set the daily goal. Setting it again on the same day replaces that
day's goal; a new day starts a new history entry. Amounts without a unit
are ounces.

Presets: 48, 64, 80, 96, 128 oz`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: goalPresets,
	RunE:      runGoalSet,
}

// goalHistoryCmd lists stored goals.
var goalHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List past goals, newest first",
	Args:  cobra.NoArgs,
	RunE:  runGoalHistory,
}

func init() {
	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalHistoryCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoal(cmd *cobra.Command, args []string) error {
	goal, err := ctx.Tracker.Goals.CurrentGoal()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(goal)
	}
	ctx.CLIFormatter().PrintGoal(goal)
	return nil
}

func runGoalSet(cmd *cobra.Command, args []string) error {
	amount, err := parser.ParseAmount(strings.Join(args, " "), model.DefaultGoalUnit)
	if err != nil {
		return err
	}

	goal, err := ctx.Tracker.Goals.SetCurrentGoal(amount.Amount, amount.Unit)
	if err != nil {
		return err
	}
	if err := ctx.AfterMutation("goal"); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status": "updated",
			"goal":   goal,
		})
	}
	cli := ctx.CLIFormatter()
	cli.Success("Daily goal set to " + cli.Amount(goal.TargetAmount, goal.Unit))
	return nil
}

func runGoalHistory(cmd *cobra.Command, args []string) error {
	goals, err := ctx.Tracker.Goals.History()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		if goals == nil {
			goals = []*model.DailyGoal{}
		}
		return ctx.Formatter.JSON(map[string]any{
			"goals": goals,
			"count": len(goals),
		})
	}
	ctx.CLIFormatter().PrintGoalHistory(goals)
	return nil
}
