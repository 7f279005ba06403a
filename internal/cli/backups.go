package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

func newBackupsCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backups",
		Short: "Create, list and restore backups of the notes",
	}
	cmd.AddCommand(
		newBackupsListCommand(rt),
		newBackupsCreateCommand(rt),
		newBackupsRestoreCommand(rt),
		newBackupsDeleteCommand(rt),
		newBackupsAutoCommand(rt),
	)
	return cmd
}

func newBackupsListCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the backups, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			backups, err := rt.services.BackupService.List(cmd.Context(), sess)
			if err != nil {
				return err
			}
			if len(backups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No backups yet")
				return nil
			}

			rows := make([][]string, 0, len(backups))
			for _, b := range backups {
				rows = append(rows, []string{
					b.ID,
					b.BackupDate.Format("2006-01-02 15:04"),
					string(b.BackupType),
					strconv.Itoa(b.NoteCount),
					b.BackupName,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "DATE", "TYPE", "NOTES", "NAME"}, rows))
			return nil
		},
	}
}

func newBackupsCreateCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Snapshot the current notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			backup, err := rt.services.BackupService.CreateBackup(cmd.Context(), sess, models.BackupManual)
			if errors.Is(err, service.ErrNoNotes) {
				fmt.Fprintln(cmd.OutOrStdout(), "No notes to back up")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Backup %q created with %d notes\n", backup.BackupName, backup.Payload.NoteCount)
			return nil
		},
	}
}

func newBackupsRestoreCommand(rt *runtime) *cobra.Command {
	var (
		admin    string
		strategy string
	)
	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Add the notes of a backup that are missing from the current set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.confirmAdmin(admin); err != nil {
				return err
			}
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			added, err := rt.services.BackupService.Restore(cmd.Context(), sess, args[0], models.RestoreStrategy(strategy))
			if err != nil {
				return err
			}
			if added == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to restore, every note of the backup is present")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %d notes restored\n", added)
			return nil
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin password, asked when empty")
	cmd.Flags().StringVar(&strategy, "strategy", string(models.RestoreMerge), "restore strategy")
	return cmd
}

func newBackupsDeleteCommand(rt *runtime) *cobra.Command {
	var admin string
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.confirmAdmin(admin); err != nil {
				return err
			}
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			if err = rt.services.BackupService.Delete(cmd.Context(), sess, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Backup %s deleted\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin password, asked when empty")
	return cmd
}

func newBackupsAutoCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:       "auto <on|off>",
		Short:     "Turn the daily automatic backup on or off",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			prefs, err := rt.services.BackupService.SetAutoBackup(cmd.Context(), sess, args[0] == "on")
			if err != nil {
				return err
			}
			state := "off"
			if prefs.BackupEnabled {
				state = "on"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Automatic backup is %s\n", state)
			return nil
		},
	}
}
