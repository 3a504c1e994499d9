package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/output"
)

// completeDrinkTypes returns a completion function for drink type values.
func completeDrinkTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || ctx == nil || ctx.Tracker == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	drinks, err := ctx.Tracker.Catalog.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, d := range drinks {
		if strings.HasPrefix(d.Value, toComplete) {
			completions = append(completions, d.Value+"\t"+d.Label+" x"+output.FormatNumber(d.HydrationMultiplier))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeUnits completes the --unit flag.
func completeUnits(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"oz\tounces", "ml\tmilliliters", "cups\t8 oz cups"}, cobra.ShellCompDirectiveNoFileComp
}

// completeEntryIDs suggests today's entries, newest last.
func completeEntryIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || ctx == nil || ctx.Tracker == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	entries, err := ctx.Tracker.Entries.ListToday()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, e := range entries {
		if strings.HasPrefix(e.ID, toComplete) {
			desc := output.FormatTimeOnly(e.Timestamp) + " " + output.FormatAmount(e.Amount, e.Unit) + " " + e.DrinkType
			completions = append(completions, e.ID+"\t"+desc)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeWeekArgs handles completion for the history command.
func completeWeekArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	weeks := []string{
		"this week",
		"last week",
		"2 weeks ago",
	}

	var filtered []string
	for _, w := range weeks {
		if strings.HasPrefix(w, toComplete) {
			filtered = append(filtered, w)
		}
	}
	return filtered, cobra.ShellCompDirectiveNoFileComp
}
