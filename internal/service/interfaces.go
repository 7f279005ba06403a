package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the auth provider: accounts, JWT sessions and one-time
// tokens for email verification and password reset.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.CredentialsRequest) (models.User, error)
	Login(ctx context.Context, creds models.CredentialsRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken validates tokenString and rejects revoked tokens.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Logout revokes token until it would have expired.
	Logout(ctx context.Context, token models.Token) error
	CurrentUser(ctx context.Context, userID int64) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, req models.PasswordUpdateRequest) error
	RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error
	ConfirmPasswordReset(ctx context.Context, req models.PasswordResetConfirmRequest) error
	VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error
}

// NoteService stores sealed notes on behalf of the authenticated user.
type NoteService interface {
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error)
	// CreateNote assigns an ID when the note has none and sets timestamps.
	CreateNote(ctx context.Context, userID int64, note models.Note) (models.Note, error)
	// InsertNotes stores notes verbatim, skipping IDs that already exist.
	InsertNotes(ctx context.Context, userID int64, req models.InsertNotesRequest) (int, error)
	UpdateNote(ctx context.Context, userID int64, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID int64, noteID string) (models.Note, error)
	Revision(ctx context.Context, userID int64) (models.NotesRevision, error)
}

// BackupService stores backup snapshots. Deletion is a tombstone.
type BackupService interface {
	CreateBackup(ctx context.Context, userID int64, req models.CreateBackupRequest) (models.Backup, error)
	ListBackups(ctx context.Context, userID int64) ([]models.BackupSummary, error)
	GetBackup(ctx context.Context, userID int64, backupID string) (models.Backup, error)
	DeleteBackup(ctx context.Context, userID int64, backupID string) error
}

// PreferencesService serves the per-user preferences record.
type PreferencesService interface {
	// GetPreferences returns the record, creating the default one if absent.
	GetPreferences(ctx context.Context, userID int64) (models.UserPreferences, error)
	UpdatePreferences(ctx context.Context, userID int64, update models.PreferencesUpdate) (models.UserPreferences, error)
}

// AttachmentService is the object storage of images and voice notes.
type AttachmentService interface {
	Upload(ctx context.Context, userID int64, bucket models.Bucket, name string, body io.Reader) (models.AttachmentInfo, error)
	Info(ctx context.Context, userID int64, bucket models.Bucket, name string) (models.AttachmentInfo, error)
	Open(ctx context.Context, userID int64, bucket models.Bucket, name string) (io.ReadCloser, models.AttachmentInfo, error)
	Delete(ctx context.Context, userID int64, bucket models.Bucket, name string) error
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionResponse
}

// Mailer delivers account emails.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
