package cmd

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/hydrate/internal/app"
	"github.com/manav03panchal/hydrate/internal/runtime"
	"github.com/manav03panchal/hydrate/internal/storage"
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export [FILE]",
	Aliases: []string{"backup", "dump"},
	Short:   "Export all data as JSON",
	Long: `Write a full backup (drink types, entries, goals and statistics) as
JSON. Without FILE the backup goes to stdout.

Examples:
  hydrate export
  hydrate export hydrate-backup.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	backup, err := ctx.Tracker.Export()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return app.EncodeBackup(ctx.Formatter.Writer, backup)
	}

	path := args[0]
	var buf bytes.Buffer
	if err := app.EncodeBackup(&buf, backup); err != nil {
		return err
	}
	if err := storage.WriteFileAtomic(path, buf.Bytes(), 0o600); err != nil {
		return runtime.WrapDiskFullError(err, "export", path)
	}
	ctx.Debugf("backup written", "path", path, "bytes", buf.Len())

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status":  "exported",
			"path":    path,
			"summary": backup.Summary(),
		})
	}
	ctx.CLIFormatter().Success("Exported " + plural(len(backup.Entries), "entry", "entries") + " to " + path)
	return nil
}
