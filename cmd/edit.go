package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
	"github.com/manav03panchal/hydrate/internal/parser"
)

// Edit command flags.
var (
	editFlagAmount string
	editFlagUnit   string
	editFlagDrink  string
	editFlagAt     string
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Change a logged drink",
	Long: `Change the amount, unit, drink type or time of an entry. Changing the
amount or the drink type recomputes its hydration points.

Examples:
  hydrate edit 0196... --amount 12
  hydrate edit 0196... --amount 500ml
  hydrate edit 0196... --drink tea
  hydrate edit 0196... --at "yesterday 8pm"`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeEntryIDs,
	RunE:              runEdit,
}

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:               "delete ID",
	Aliases:           []string{"rm", "remove"},
	Short:             "Delete a logged drink",
	Long:              `Delete an entry. 'hydrate undo' brings it back.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeEntryIDs,
	RunE:              runDelete,
}

func init() {
	editCmd.Flags().StringVarP(&editFlagAmount, "amount", "a", "", "New amount, optionally with unit (e.g., 12, 500ml)")
	editCmd.Flags().StringVarP(&editFlagUnit, "unit", "u", "", "New unit: oz, ml, cups")
	editCmd.Flags().StringVarP(&editFlagDrink, "drink", "d", "", "New drink type")
	editCmd.Flags().StringVar(&editFlagAt, "at", "", "New time")

	editCmd.RegisterFlagCompletionFunc("drink", completeDrinkTypes)
	editCmd.RegisterFlagCompletionFunc("unit", completeUnits)

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	patch, err := buildPatch()
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return errors.NewValidationError("edit", "nothing to change").
			WithSuggestion("Pass at least one of --amount, --unit, --drink or --at.")
	}

	entry, err := ctx.Tracker.Entries.Update(args[0], patch)
	if err != nil {
		return err
	}
	if err := ctx.AfterMutation("edit"); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintEntry("updated", entry)
	}
	ctx.CLIFormatter().PrintEntryUpdated(entry)
	return nil
}

// buildPatch turns the edit flags into an EntryPatch. A unit carried by
// --amount applies unless --unit is also given.
func buildPatch() (model.EntryPatch, error) {
	var patch model.EntryPatch

	if editFlagAmount != "" {
		amount, err := parser.ParseAmount(editFlagAmount, "")
		if err != nil {
			return patch, err
		}
		patch.Amount = &amount.Amount
		if amount.HasUnit {
			patch.Unit = &amount.Unit
		}
	}
	if editFlagUnit != "" {
		unit, err := parser.ParseUnitArg(editFlagUnit)
		if err != nil {
			return patch, err
		}
		patch.Unit = &unit
	}
	if editFlagDrink != "" {
		drink := editFlagDrink
		patch.DrinkType = &drink
	}
	if editFlagAt != "" {
		result := parser.ParseTimestampAt(editFlagAt, ctx.Tracker.Now())
		if result.Error != nil {
			return patch, result.Error
		}
		patch.Timestamp = &result.Time
	}
	return patch, nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	entry, err := ctx.Tracker.Entries.Delete(args[0])
	if err != nil {
		return err
	}
	if err := ctx.AfterMutation("delete"); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintEntry("deleted", entry)
	}
	ctx.CLIFormatter().PrintEntryDeleted(entry)
	return nil
}
