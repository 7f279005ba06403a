package cli

import (
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

type credentialFlags struct {
	email    string
	password string
}

func (f *credentialFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "account password, asked when empty")
	_ = cmd.MarkFlagRequired("email")
}

func (f *credentialFlags) request(rt *runtime) (models.CredentialsRequest, error) {
	password := f.password
	if password == "" {
		var err error
		if password, err = rt.promptSecret("Пароль"); err != nil {
			return models.CredentialsRequest{}, err
		}
	}
	return models.CredentialsRequest{Email: f.email, Password: password}, nil
}

func newRegisterCommand(rt *runtime) *cobra.Command {
	var creds credentialFlags
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account on the notes server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := creds.request(rt)
			if err != nil {
				return err
			}
			user, err := rt.services.AuthService.Register(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Account %s created, run 'notes login' to sign in\n", user.Email)
			return nil
		},
	}
	creds.bind(cmd)
	return cmd
}

func newLoginCommand(rt *runtime) *cobra.Command {
	var creds credentialFlags
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := creds.request(rt)
			if err != nil {
				return err
			}
			sess, err := rt.services.AuthService.Login(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Signed in as %s\n", sess.Email)
			return nil
		},
	}
	creds.bind(cmd)
	return cmd
}

func newLogoutCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the session on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := rt.services.AuthService.RestoreSession(cmd.Context())
			if err != nil {
				// nothing usable is stored, clear it anyway
				sess = models.Session{}
			}
			if err = rt.services.AuthService.Logout(cmd.Context(), sess); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Signed out")
			return nil
		},
	}
}
