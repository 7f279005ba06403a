package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDuplicatesCommand(rt *runtime) *cobra.Command {
	var admin string
	cmd := &cobra.Command{
		Use:   "duplicates",
		Short: "Keep the newest note of every set with identical content",
		Long: `Finds notes whose opened content is identical and deletes every copy but
the most recently updated one. Deletion failures are reported and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.confirmAdmin(admin); err != nil {
				return err
			}
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			notes, err := rt.services.NoteService.ListRaw(cmd.Context(), sess)
			if err != nil {
				return err
			}
			report, err := rt.services.DuplicateService.FindAndCollapse(cmd.Context(), sess, notes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report.Groups == 0 {
				fmt.Fprintln(out, "No duplicates found")
				return nil
			}
			fmt.Fprintf(out, "✓ %d duplicate sets, %d notes deleted\n", report.Groups, report.Deleted)
			for _, id := range report.Failed {
				fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s was not deleted\n", id)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin password, asked when empty")
	return cmd
}

func newUsageCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show the storage taken by notes and images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			notes, err := rt.services.NoteService.ListRaw(cmd.Context(), sess)
			if err != nil {
				return err
			}
			usage, err := rt.services.StorageService.ComputeUsage(cmd.Context(), sess, notes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if usage.Unlimited {
				fmt.Fprintf(out, "%s used, unlimited account\n", formatBytes(usage.UsedBytes))
				return nil
			}
			fmt.Fprintf(out, "%s of %s used (%.1f%%)\n", formatBytes(usage.UsedBytes), formatBytes(usage.QuotaBytes), usage.Percent())
			if usage.Exceeded() {
				fmt.Fprintln(out, "! Quota exceeded")
			}
			return nil
		},
	}
}
