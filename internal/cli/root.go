// Package cli is the cobra command tree of the notes client.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/client"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/export"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const clientRole = "notes-client"

// runtime holds what the commands share. It is filled lazily by init so
// that help and version never touch the local database.
type runtime struct {
	buildInfo models.AppBuildInfo
	flags     *pflag.FlagSet

	cfg      *config.ClientConfig
	logger   *logger.Logger
	clock    clock.Clock
	services *service.ClientServices
	browser  client.Browser
	closers  []func() error

	promptSecret func(title string) (string, error)
	copyText     func(text string) error
}

// NewRootCommand builds the client command tree.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return newRootCommand(&runtime{
		buildInfo:    buildInfo,
		flags:        config.NewFlagSet(clientRole),
		clock:        clock.New(),
		promptSecret: tui.PromptSecret,
		copyText:     clipboard.WriteAll,
	})
}

func newRootCommand(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:   "notes",
		Short: "Encrypted personal notes",
		Long: `notes keeps personal notes on a notes server. Titles, contents and image
references are sealed on this device before they are sent.

Usage:
  notes <command> [flags]

Run 'notes help <command>' for more details on a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationNoInit] == "true" {
				return nil
			}
			return rt.init(cmd.Context())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return rt.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	if rt.flags != nil {
		root.PersistentFlags().AddFlagSet(rt.flags)
	}

	root.AddCommand(
		newRegisterCommand(rt),
		newLoginCommand(rt),
		newLogoutCommand(rt),
		newNotesCommand(rt),
		newBackupsCommand(rt),
		newDuplicatesCommand(rt),
		newUsageCommand(rt),
		newExportCommand(rt),
		newBrowseCommand(rt),
		newVersionCommand(rt),
	)
	return root
}

const annotationNoInit = "no-init"

func (rt *runtime) init(ctx context.Context) error {
	if rt.services != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(rt.flags)
	if err != nil {
		return fmt.Errorf("get configs: %w", err)
	}
	rt.cfg = cfg

	rt.logger = logger.NewClientLogger(clientRole, cfg.App.LogFile)
	logger.SetLevel(cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, rt.logger)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	localStore, err := store.NewClientStorages(ctx, cfg.Storage, rt.logger)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	rt.closers = append(rt.closers, localStore.Close)

	keys, err := crypto.NewStaticKeyProvider(cfg.App.EnvelopeSecret)
	if err != nil {
		return fmt.Errorf("create envelope key: %w", err)
	}
	sealer := crypto.NewEnvelope(keys, rt.logger)
	exporter := export.NewExporter(cfg.Storage.ExportDir, rt.buildInfo.BuildVersion(), localStore.ExportHistoryRepository, rt.clock, rt.logger)

	rt.services = service.NewClientServices(localStore, serverAdapter, sealer, exporter, cfg.App, rt.clock, rt.logger)
	rt.browser = tui.New(rt.services, rt.buildInfo, rt.logger)
	return nil
}

func (rt *runtime) close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		errs = append(errs, rt.closers[i]())
	}
	rt.closers = nil
	return errors.Join(errs...)
}

// session returns the stored session, checked with the server.
func (rt *runtime) session(ctx context.Context) (models.Session, error) {
	sess, err := rt.services.AuthService.RestoreSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, client.ErrNotSignedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}
	return sess, nil
}

// confirmAdmin checks the admin password given by flag or, when empty,
// asked interactively.
func (rt *runtime) confirmAdmin(password string) error {
	if password == "" {
		var err error
		if password, err = rt.promptSecret("Пароль администратора"); err != nil {
			return err
		}
	}
	return rt.services.AdminGate.Confirm(password)
}

func (rt *runtime) workersConfig() config.ClientWorkers {
	if rt.cfg == nil {
		return config.ClientWorkers{}
	}
	return rt.cfg.Workers
}

func (rt *runtime) log() *logger.Logger {
	if rt.logger == nil {
		return logger.Nop()
	}
	return rt.logger
}
