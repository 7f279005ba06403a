package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ClientAuthService defines the client-side contract for sign-up, sign-in and
// sign-out. The signed-in principal is returned as a [models.Session] and
// passed explicitly to every other client service.
type ClientAuthService interface {
	// Register creates an account on the server. It does not sign in.
	Register(ctx context.Context, creds models.CredentialsRequest) (models.User, error)

	// Login authenticates against the server, stores the session locally
	// and returns it.
	Login(ctx context.Context, creds models.CredentialsRequest) (models.Session, error)

	// Logout clears the local session and signs out of the server. It is
	// safe to call when already signed out.
	Logout(ctx context.Context, session models.Session) error

	// RestoreSession loads the locally stored session and checks it with the
	// server. Returns store.ErrLocalSessionNotFound when nobody is signed in.
	RestoreSession(ctx context.Context) (models.Session, error)
}

// ClientNoteService is the note repository adapter. It seals title, content
// and image reference before they leave the client and opens them on the way
// back. Remote failures are returned as *RepositoryError.
type ClientNoteService interface {
	Create(ctx context.Context, session models.Session, input models.NoteInput) (models.Note, error)
	Update(ctx context.Context, session models.Session, noteID string, update models.NoteUpdate) error

	// Delete removes the note and then, best effort, its image. An image
	// cleanup failure is reported in DeleteResult.AttachmentErr only.
	Delete(ctx context.Context, session models.Session, noteID string) (models.DeleteResult, error)

	// List and Get return opened notes.
	List(ctx context.Context, session models.Session) ([]models.Note, error)
	Get(ctx context.Context, session models.Session, noteID string) (models.Note, error)

	// ListRaw returns notes exactly as stored, still sealed.
	ListRaw(ctx context.Context, session models.Session) ([]models.Note, error)

	// InsertRaw stores already sealed notes verbatim and returns how many
	// were inserted.
	InsertRaw(ctx context.Context, session models.Session, notes []models.Note) (int, error)

	// BulkDelete deletes notes one by one. Failures are logged and skipped.
	BulkDelete(ctx context.Context, session models.Session, noteIDs []string) (models.BatchResult, error)
}

// ClientBackupService is the backup manager.
type ClientBackupService interface {
	// CreateBackup snapshots the sealed note set. Fails with ErrNoNotes,
	// without any store write, when there are no notes.
	CreateBackup(ctx context.Context, session models.Session, backupType models.BackupType) (models.Backup, error)

	// ScheduleCheck creates an automatic backup when it is enabled, notes
	// exist and the last backup is older than a day.
	ScheduleCheck(ctx context.Context, session models.Session) (bool, error)

	// Restore merges the backup into the live set and returns how many
	// notes were added.
	Restore(ctx context.Context, session models.Session, backupID string, strategy models.RestoreStrategy) (int, error)

	Delete(ctx context.Context, session models.Session, backupID string) error
	List(ctx context.Context, session models.Session) ([]models.BackupSummary, error)

	// SetAutoBackup turns the daily automatic backup on or off.
	SetAutoBackup(ctx context.Context, session models.Session, enabled bool) (models.UserPreferences, error)
}

// ClientDuplicateService is the duplicate reconciler.
type ClientDuplicateService interface {
	// FindAndCollapse keeps the most recently updated note of every group
	// with identical content and deletes the rest.
	FindAndCollapse(ctx context.Context, session models.Session, notes []models.Note) (models.DuplicateReport, error)
}

// ClientStorageService is the storage accounting.
type ClientStorageService interface {
	ComputeUsage(ctx context.Context, session models.Session, notes []models.Note) (models.StorageUsage, error)
}

// ClientExportService renders the opened notes to an offline file and
// records it in the local export history.
type ClientExportService interface {
	Export(ctx context.Context, session models.Session, format models.ExportFormat) (models.ExportRecord, error)
	History(ctx context.Context, session models.Session) ([]models.ExportRecord, error)
}

// AdminGate is the secondary confirmation of sensitive actions.
type AdminGate interface {
	Confirm(password string) error
}

// NoteWatcher polls the notes revision and re-lists the notes on every
// change.
type NoteWatcher interface {
	// Start launches the background poller. Any running poller is stopped
	// first. onChange receives the full opened list.
	Start(ctx context.Context, session models.Session, interval time.Duration, onChange func([]models.Note))

	// Stop stops the poller and waits for it to exit.
	Stop()
}

// NoteExporter renders notes to a file and keeps the export history.
type NoteExporter interface {
	Export(ctx context.Context, userID int64, format models.ExportFormat, notes []models.Note) (models.ExportRecord, error)
	History(ctx context.Context, userID int64) ([]models.ExportRecord, error)
}
