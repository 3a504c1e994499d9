package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/output"
	"github.com/manav03panchal/hydrate/internal/parser"
)

var todayFlagDate string

// todayCmd represents the today command.
var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t", "status"},
	Short:   "Show today's progress",
	Long: `Show intake, progress toward the current goal and the entries of one day.

Examples:
  hydrate today
  hydrate today --date yesterday
  hydrate today --date 2026-04-08`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

func init() {
	todayCmd.Flags().StringVarP(&todayFlagDate, "date", "d", "", "Day to show (e.g., yesterday, monday, 2026-04-08)")
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	now := ctx.Tracker.Now()
	day := now
	title := "Today"
	if todayFlagDate != "" {
		var err error
		day, err = parser.ParseDay(todayFlagDate, now)
		if err != nil {
			return err
		}
		title = output.FormatWeekday(day)
	}

	summary, err := ctx.Tracker.Day(day)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintDay(summary)
	}
	ctx.CLIFormatter().PrintDay(title, summary)
	return nil
}
