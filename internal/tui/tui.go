// Package tui is the terminal notes browser of the client.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/session"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrSessionEnded is returned by Browse when the session was closed while
// the browser was open, e.g. by the inactivity guard.
var ErrSessionEnded = errors.New("сессия завершена")

// ActivityGuard receives the interaction events of the browser.
type ActivityGuard interface {
	Touch(event session.EventType) error
	Hide()
	Show()
}

// Options configure one browser run.
type Options struct {
	Session   models.Session
	Notes     service.ClientNoteService
	Backups   service.ClientBackupService
	Guard     ActivityGuard
	BuildInfo models.AppBuildInfo

	// Updates delivers lists from the background watcher. May be nil.
	Updates <-chan []models.Note

	// CopyText replaces the system clipboard. Nil means the clipboard.
	CopyText func(string) error
}

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: log}
}

// Browse runs the browser until the user quits or ctx is cancelled.
func (t *TUI) Browse(ctx context.Context, sess models.Session, guard ActivityGuard, updates <-chan []models.Note) error {
	model := newBrowserModel(ctx, Options{
		Session:   sess,
		Notes:     t.services.NoteService,
		Backups:   t.services.BackupService,
		Guard:     guard,
		BuildInfo: t.buildInfo,
		Updates:   updates,
	})

	finalModel, err := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run notes browser: %w", err)
	}

	result, ok := finalModel.(browserModel)
	if !ok || result.ended || ctx.Err() != nil {
		t.logger.Info().Str("func", "*TUI.Browse").Msg("browser closed by session end")
		return ErrSessionEnded
	}
	return nil
}

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}

type nopGuard struct{}

func (nopGuard) Touch(session.EventType) error { return nil }
func (nopGuard) Hide()                         {}
func (nopGuard) Show()                         {}
