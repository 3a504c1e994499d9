package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
	"github.com/manav03panchal/hydrate/internal/output"
	"github.com/manav03panchal/hydrate/internal/parser"
)

// Add command flags.
var (
	addFlagUnit  string
	addFlagDrink string
	addFlagAt    string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:     "add AMOUNT [UNIT] [DRINK] [at TIME]",
	Aliases: []string{"a", "log", "drink"},
	Short:   "Log a drink",
	Long: `Log a drink. The amount comes first and may carry its unit. Without a
unit the current goal's unit is used; without a drink type it is water.

Units: oz, ml, cups

Examples:
  hydrate add 16
  hydrate add 16oz
  hydrate add 500 ml tea
  hydrate add 12oz coffee at 9am
  hydrate add 2 cups of juice yesterday at 3pm
  hydrate add 8 --drink milk --at "2 hours ago"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

// quickCmd represents the quick command.
var quickCmd = &cobra.Command{
	Use:   "quick [8|12|16]",
	Short: "Log a glass of water",
	Long: `Log a preset amount of water in ounces (default 8).

Examples:
  hydrate quick
  hydrate quick 16`,
	ValidArgs: quickPresets,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE:      runQuick,
}

// quickPresets are the one-tap water amounts, in ounces.
var quickPresets = []string{"8", "12", "16"}

func init() {
	addCmd.Flags().StringVarP(&addFlagUnit, "unit", "u", "", "Unit: oz, ml, cups")
	addCmd.Flags().StringVarP(&addFlagDrink, "drink", "d", "", "Drink type (e.g., water, tea, coffee)")
	addCmd.Flags().StringVar(&addFlagAt, "at", "", "When you drank it (e.g., 9am, '2 hours ago')")

	addCmd.RegisterFlagCompletionFunc("drink", completeDrinkTypes)
	addCmd.RegisterFlagCompletionFunc("unit", completeUnits)

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(quickCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	parsed := parser.Parse(args)
	if err := parsed.Merge(addFlagUnit, addFlagDrink, addFlagAt); err != nil {
		return err
	}

	goal, err := ctx.Tracker.Goals.CurrentGoal()
	if err != nil {
		return err
	}
	if err := parsed.Process(goal.Unit, ctx.Tracker.Now()); err != nil {
		return err
	}
	ctx.Debugf("parsed add", "amount", parsed.Amount, "unit", parsed.Unit,
		"drink", parsed.DrinkType, "at", parsed.RawTimestamp)

	entry, err := ctx.Tracker.Entries.Create(parsed.Amount, parsed.Unit, parsed.DrinkType, parsed.Timestamp)
	if err != nil {
		return err
	}
	return finishAdd(entry)
}

func runQuick(cmd *cobra.Command, args []string) error {
	preset := quickPresets[0]
	if len(args) > 0 {
		preset = args[0]
	}
	amount, err := parser.ParseAmount(preset, model.UnitOz)
	if err != nil {
		return err
	}

	entry, err := ctx.Tracker.Entries.Create(amount.Amount, model.UnitOz, model.DefaultDrinkType, ctx.Tracker.Now())
	if err != nil {
		return err
	}
	return finishAdd(entry)
}

// finishAdd refreshes stats and reports a new entry with today's progress.
func finishAdd(entry *model.WaterEntry) error {
	if err := ctx.AfterMutation("add"); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintEntry("added", entry)
	}

	cli := ctx.CLIFormatter()
	cli.PrintEntryAdded(entry)

	if _, err := ctx.Tracker.Catalog.Get(entry.DrinkType); errors.IsNotFoundError(err) {
		cli.Warning(fmt.Sprintf("'%s' is not in the drink catalog; counted at full hydration", entry.DrinkType))
	}

	day, err := ctx.Tracker.Today()
	if err != nil {
		return err
	}
	cli.Println("")
	cli.Printf("Today: %s / %s  %s  %s\n",
		cli.Amount(day.Total, day.Goal.Unit),
		output.FormatAmount(day.Goal.TargetAmount, day.Goal.Unit),
		cli.Bar(day.ProgressPercent),
		output.FormatPercent(day.ProgressPercent))
	return nil
}
