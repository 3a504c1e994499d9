package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/app"
	"github.com/manav03panchal/hydrate/internal/errors"
)

var importFlagDryRun bool

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:     "import FILE",
	Aliases: []string{"restore"},
	Short:   "Import a backup",
	Long: `Merge a backup written by 'hydrate export'. Records are matched by id,
so importing the same file twice adds nothing. The higher of the two
longest streaks is kept.

Examples:
  hydrate import hydrate-backup.json
  hydrate import hydrate-backup.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importFlagDryRun, "dry-run", false, "Preview import without making changes")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewValidationErrorWithValue("file", args[0], "no such file", err)
		}
		return errors.NewSystemErrorWithOp("import", "cannot open backup", err)
	}
	defer f.Close()

	backup, err := app.DecodeBackup(f)
	if err != nil {
		return err
	}
	if err := backup.Validate(); err != nil {
		return err
	}

	if importFlagDryRun {
		summary := backup.Summary()
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]any{
				"status":  "dry_run",
				"summary": summary,
			})
		}
		cli := ctx.CLIFormatter()
		cli.Title("Dry run: nothing was written")
		cli.Printf("  Entries:     %d\n", summary.Entries)
		cli.Printf("  Goals:       %d\n", summary.Goals)
		cli.Printf("  Drink types: %d\n", summary.DrinkTypes)
		return nil
	}

	result, err := ctx.Tracker.Import(backup)
	if err != nil {
		return err
	}
	ctx.Debugf("import", "file", args[0], "entries", result.Entries)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status": "imported",
			"result": result,
		})
	}
	ctx.CLIFormatter().PrintImport(result)
	return nil
}

// plural formats a count with the singular or plural noun.
func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
