package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/accounting"
	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
	"github.com/manav03panchal/hydrate/internal/parser"
)

// Entries command flags.
var (
	entriesFlagFrom string
	entriesFlagTo   string
	entriesFlagAll  bool
)

// entriesCmd represents the entries command.
var entriesCmd = &cobra.Command{
	Use:     "entries",
	Aliases: []string{"ls", "list"},
	Short:   "List logged drinks",
	Long: `List logged drinks. Shows today by default.

Examples:
  hydrate entries
  hydrate entries --from monday
  hydrate entries --from 2026-04-01 --to 2026-04-07
  hydrate entries --all`,
	Args: cobra.NoArgs,
	RunE: runEntries,
}

func init() {
	entriesCmd.Flags().StringVar(&entriesFlagFrom, "from", "", "First day to include")
	entriesCmd.Flags().StringVar(&entriesFlagTo, "to", "", "Last day to include (default: today)")
	entriesCmd.Flags().BoolVarP(&entriesFlagAll, "all", "a", false, "List every entry")

	rootCmd.AddCommand(entriesCmd)
}

func runEntries(cmd *cobra.Command, args []string) error {
	entries, withDate, err := loadEntries()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintEntries(entries)
	}
	ctx.CLIFormatter().PrintEntries(entries, withDate)
	return nil
}

func loadEntries() ([]*model.WaterEntry, bool, error) {
	if entriesFlagAll {
		entries, err := ctx.Tracker.Entries.ListAll()
		return entries, true, err
	}
	if entriesFlagFrom == "" && entriesFlagTo == "" {
		entries, err := ctx.Tracker.Entries.ListToday()
		return entries, false, err
	}

	now := ctx.Tracker.Now()
	start := accounting.StartOfDay(now)
	end := accounting.EndOfDay(now)
	if entriesFlagFrom != "" {
		day, err := parser.ParseDay(entriesFlagFrom, now)
		if err != nil {
			return nil, false, err
		}
		start = day
	}
	if entriesFlagTo != "" {
		day, err := parser.ParseDay(entriesFlagTo, now)
		if err != nil {
			return nil, false, err
		}
		end = accounting.EndOfDay(day)
	}
	if end.Before(start) {
		return nil, false, errors.NewValidationError("to", "must not be before --from").
			WithSuggestion("Swap the two dates.")
	}

	entries, err := ctx.Tracker.Entries.ListInRange(start, end)
	return entries, true, err
}
