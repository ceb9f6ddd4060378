package cli

import (
	"github.com/spf13/cobra"
)

func newExportCommand(engine Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write both scopes to a snapshot file",
		Long: `Write both scopes to env-export-YYYYMMDD-HHMMSS.json in EXPORT_DIR,
or the desktop directory when EXPORT_DIR is unset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := engine.Export(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{"path": path})
		},
	}
}

func newImportCommand(engine Engine) *cobra.Command {
	var archived bool

	cmd := &cobra.Command{
		Use:   "import PATH",
		Short: "Apply a JSON or YAML snapshot",
		Long: `Apply every entry of a snapshot. Entries that cannot be applied are
skipped; the output lists the entries that were applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			importer := engine.Import
			if archived {
				importer = engine.ImportArchived
			}
			vars, err := importer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), nonNil(vars))
		},
	}
	cmd.Flags().BoolVar(&archived, "archived", false, "treat PATH as a key in the snapshot archive")

	return cmd
}

func newArchivedCommand(engine Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "archived",
		Short: "List snapshots kept in the archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys, err := engine.ListArchived(cmd.Context())
			if err != nil {
				return err
			}
			if keys == nil {
				keys = []string{}
			}
			return writeJSON(cmd.OutOrStdout(), keys)
		},
	}
}
