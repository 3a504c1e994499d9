package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
)

// Drinks set flags.
var (
	drinksSetFlagLabel    string
	drinksSetFlagIcon     string
	drinksSetFlagInactive bool
)

// drinksCmd represents the drinks command.
var drinksCmd = &cobra.Command{
	Use:     "drinks",
	Aliases: []string{"drink-types"},
	Short:   "Manage the drink catalog",
	Long: `List drink types and their hydration multipliers. A multiplier of 0.8
means 10 oz of that drink counts as 8 hydration points. Drinks that are
not in the catalog count at 1.0.

Examples:
  hydrate drinks
  hydrate drinks set kombucha 0.9 --label Kombucha
  hydrate drinks disable juice
  hydrate drinks enable juice`,
	Args: cobra.NoArgs,
	RunE: runDrinks,
}

// drinksSetCmd creates or replaces a drink type.
var drinksSetCmd = &cobra.Command{
	Use:               "set VALUE MULTIPLIER",
	Short:             "Add or change a drink type",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeDrinkTypes,
	RunE:              runDrinksSet,
}

// drinksEnableCmd marks a drink type active.
var drinksEnableCmd = &cobra.Command{
	Use:               "enable VALUE",
	Short:             "Show a drink type in the active list",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeDrinkTypes,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setDrinkActive(args[0], true)
	},
}

// drinksDisableCmd marks a drink type inactive.
var drinksDisableCmd = &cobra.Command{
	Use:               "disable VALUE",
	Short:             "Hide a drink type from the active list",
	Long:              `Hide a drink type. Existing and new entries of it keep its multiplier.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeDrinkTypes,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setDrinkActive(args[0], false)
	},
}

func init() {
	drinksSetCmd.Flags().StringVarP(&drinksSetFlagLabel, "label", "l", "", "Display name (default: title-cased value)")
	drinksSetCmd.Flags().StringVar(&drinksSetFlagIcon, "icon", "", "Icon shown next to the label")
	drinksSetCmd.Flags().BoolVar(&drinksSetFlagInactive, "inactive", false, "Create the drink type hidden")

	drinksCmd.AddCommand(drinksSetCmd)
	drinksCmd.AddCommand(drinksEnableCmd)
	drinksCmd.AddCommand(drinksDisableCmd)
	rootCmd.AddCommand(drinksCmd)
}

func runDrinks(cmd *cobra.Command, args []string) error {
	drinks, err := ctx.Tracker.Catalog.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		if drinks == nil {
			drinks = []*model.DrinkType{}
		}
		return ctx.Formatter.JSON(map[string]any{
			"drinkTypes": drinks,
			"count":      len(drinks),
		})
	}
	ctx.CLIFormatter().PrintDrinks(drinks)
	return nil
}

func runDrinksSet(cmd *cobra.Command, args []string) error {
	multiplier, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return errors.NewValidationErrorWithValue("multiplier", args[1], "not a number", nil).
			WithSuggestion("Use a decimal like 0.8 or 1.0.")
	}

	drink, err := ctx.Tracker.Catalog.Upsert(&model.DrinkType{
		Value:               args[0],
		Label:               drinksSetFlagLabel,
		Icon:                drinksSetFlagIcon,
		HydrationMultiplier: multiplier,
		Active:              !drinksSetFlagInactive,
	})
	if err != nil {
		return err
	}
	return printDrink("saved", drink)
}

func setDrinkActive(value string, active bool) error {
	drink, err := ctx.Tracker.Catalog.SetActive(value, active)
	if err != nil {
		return err
	}
	status := "disabled"
	if active {
		status = "enabled"
	}
	return printDrink(status, drink)
}

func printDrink(status string, drink *model.DrinkType) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status":    status,
			"drinkType": drink,
		})
	}
	cli := ctx.CLIFormatter()
	cli.Success(drink.Label + " " + status)
	cli.PrintDrinks([]*model.DrinkType{drink})
	return nil
}
