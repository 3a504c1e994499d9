package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/errors"
)

// undoCmd represents the undo command.
var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last action",
	Long: `Undo the last undoable action (add or delete).

Examples:
  hydrate add 16oz
  hydrate undo
  # Removes the entry that was just added

  hydrate delete 0196...
  hydrate undo
  # Restores the deleted entry`,
	Args: cobra.NoArgs,
	RunE: runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	state, err := ctx.Tracker.Entries.Undo()
	if errors.Is(err, errors.ErrNothingToUndo) {
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]string{
				"status":  "nothing_to_undo",
				"message": "Nothing to undo",
			})
		}
		ctx.CLIFormatter().Muted("Nothing to undo")
		return nil
	}
	if err != nil {
		return err
	}
	if err := ctx.AfterMutation("undo"); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintUndo(state)
	}
	ctx.CLIFormatter().PrintUndo(state)
	return nil
}
