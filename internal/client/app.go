package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/session"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/benbjohnson/clock"
)

type App struct {
	services *service.ClientServices
	ui       Browser
	cfg      config.ClientWorkers
	clock    clock.Clock
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui Browser, cfg config.ClientWorkers, clk clock.Clock, log *logger.Logger) *App {
	if clk == nil {
		clk = clock.New()
	}
	return &App{
		services: services,
		ui:       ui,
		cfg:      cfg,
		clock:    clk,
		logger:   log,
	}
}

// Run restores the stored session and browses it. The session is signed out
// when the guard fires; quitting the browser keeps it.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	sess, err := a.services.AuthService.RestoreSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return ErrNotSignedIn
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	guard := session.NewGuard(a.clock, a.cfg.InactivityTimeout, func() {
		cancel()
		a.logout(context.WithoutCancel(ctx), sess)
	}, a.logger)
	defer guard.Stop()

	watch := workers.NewNoteWatch(a.services.NoteWatcher, sess, a.cfg.WatchInterval)
	jobs := workers.NewWorkers(
		workers.NewBackupCheck(a.services.BackupService, sess, a.cfg.BackupCheckDelay, a.clock, a.logger),
		watch,
	)
	jobs.Run(sessionCtx)
	defer jobs.Stop()

	a.logger.Info().Str("func", "*App.Run").Int64("user_id", sess.UserID).Msg("session started")

	err = a.ui.Browse(sessionCtx, sess, guard, watch.Updates())
	switch {
	case errors.Is(err, tui.ErrSessionEnded) && guard.State() == session.StateLoggedOut:
		return ErrSessionExpired
	case errors.Is(err, tui.ErrSessionEnded):
		return ctx.Err()
	case err != nil:
		return err
	}
	return nil
}

func (a *App) logout(ctx context.Context, sess models.Session) {
	if err := a.services.AuthService.Logout(ctx, sess); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.logout").Msg("sign out after inactivity failed")
	}
}
