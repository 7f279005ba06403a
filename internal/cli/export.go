package cli

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

func newExportCommand(rt *runtime) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the opened notes to an offline file",
		Long: `Renders every note to a file in the export directory.

Formats:
  xlsx   one spreadsheet row per note
  pdf    one section per note
  zip    one HTML file per note plus a manifest`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			record, err := rt.services.ExportService.Export(cmd.Context(), sess, models.ExportFormat(format))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %d notes exported to %s (%s)\n", record.ItemCount, record.FilePath, formatBytes(record.SizeBytes))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "F", string(models.ExportZIP), "xlsx, pdf or zip")
	cmd.AddCommand(newExportHistoryCommand(rt))
	return cmd
}

func newExportHistoryCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the exports made on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			records, err := rt.services.ExportService.History(cmd.Context(), sess)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No exports yet")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, r := range records {
				rows = append(rows, []string{
					r.CreatedAt.Format("2006-01-02 15:04"),
					string(r.Format),
					strconv.Itoa(r.ItemCount),
					r.FilePath,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"DATE", "FORMAT", "NOTES", "FILE"}, rows))
			return nil
		},
	}
}
