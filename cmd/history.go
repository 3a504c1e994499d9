package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/parser"
)

// historyCmd represents the history command.
var historyCmd = &cobra.Command{
	Use:     "history [WEEK]",
	Aliases: []string{"week", "h"},
	Short:   "Show a week of progress",
	Long: `Show daily totals for a Sunday-to-Saturday week with the weekly
average and how many days met the goal.

Examples:
  hydrate history
  hydrate history last week
  hydrate history 2 weeks ago
  hydrate history 2026-03-15`,
	RunE: runHistory,
}

func init() {
	historyCmd.ValidArgsFunction = completeWeekArgs
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ref, err := parser.ParseWeek(strings.Join(args, " "), ctx.Tracker.Now())
	if err != nil {
		return err
	}

	week, err := ctx.Tracker.Week(ref)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintWeek(week)
	}
	ctx.CLIFormatter().PrintWeek(week)
	return nil
}
