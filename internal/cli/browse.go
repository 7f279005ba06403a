package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/client"
	"github.com/spf13/cobra"
)

func newBrowseCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive notes browser",
		Long: `Opens the notes browser for the stored session. The list follows changes
made on other devices, and an automatic backup check runs shortly after start.
The session is signed out after a period without interaction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := client.NewApp(rt.services, rt.browser, rt.workersConfig(), rt.clock, rt.log())
			err := app.Run(cmd.Context())
			if errors.Is(err, client.ErrSessionExpired) {
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out after inactivity")
				return nil
			}
			return err
		},
	}
}

func newVersionCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoInit: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := rt.buildInfo.Response()
			fmt.Fprintf(cmd.OutOrStdout(), "Build version: %s\nBuild date: %s\nBuild commit: %s\n", info.Version, info.Date, info.Commit)
			return nil
		},
	}
}
