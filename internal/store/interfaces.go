package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists accounts of the auth provider.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
	MarkEmailVerified(ctx context.Context, userID int64) error
}

// NoteRepository persists notes. Every method is scoped to userID.
type NoteRepository interface {
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	// InsertNotes stores notes verbatim and skips IDs that already exist.
	// It returns the number of rows actually inserted.
	InsertNotes(ctx context.Context, userID int64, notes []models.Note) (int, error)
	UpdateNote(ctx context.Context, userID int64, noteID string, update models.NoteUpdate) (models.Note, error)
	// DeleteNote removes the note and returns it as it was.
	DeleteNote(ctx context.Context, userID int64, noteID string) (models.Note, error)
	Revision(ctx context.Context, userID int64) (models.NotesRevision, error)
}

// BackupRepository persists backups. Deleted backups are tombstoned.
type BackupRepository interface {
	CreateBackup(ctx context.Context, backup models.Backup) (models.Backup, error)
	// ListBackups returns live backups, newest first.
	ListBackups(ctx context.Context, userID int64) ([]models.BackupSummary, error)
	GetBackup(ctx context.Context, userID int64, backupID string) (models.Backup, error)
	MarkBackupDeleted(ctx context.Context, userID int64, backupID string) error
}

// PreferencesRepository persists one preferences record per user.
type PreferencesRepository interface {
	// GetOrCreatePreferences returns the record, creating the default one
	// when it is absent.
	GetOrCreatePreferences(ctx context.Context, userID int64) (models.UserPreferences, error)
	UpdatePreferences(ctx context.Context, userID int64, update models.PreferencesUpdate) (models.UserPreferences, error)
}

// AttachmentStorage stores attachment objects by bucket, owner and name.
type AttachmentStorage interface {
	Put(ctx context.Context, userID int64, bucket models.Bucket, name string, body io.Reader) (models.AttachmentInfo, error)
	Stat(ctx context.Context, userID int64, bucket models.Bucket, name string) (models.AttachmentInfo, error)
	Open(ctx context.Context, userID int64, bucket models.Bucket, name string) (io.ReadCloser, models.AttachmentInfo, error)
	Delete(ctx context.Context, userID int64, bucket models.Bucket, name string) error
}

// TokenStore keeps revoked token IDs and one-time tokens with an expiry.
type TokenStore interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
	SaveOneTimeToken(ctx context.Context, purpose, token string, userID int64, ttl time.Duration) error
	// ConsumeOneTimeToken returns the owner of token and removes it.
	ConsumeOneTimeToken(ctx context.Context, purpose, token string) (int64, error)
}

// LocalSessionRepository keeps the signed-in session on the client device.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}

// ExportHistoryRepository records offline exports on the client device.
type ExportHistoryRepository interface {
	SaveExport(ctx context.Context, record models.ExportRecord) error
	ListExports(ctx context.Context, userID int64) ([]models.ExportRecord, error)
}
