// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the notes server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the notes
// server. Authenticated calls use the token attached to ctx with [WithToken],
// or the token stored by SetToken when ctx carries none.
type ServerAdapter interface {
	// SetToken stores the bearer token used when ctx carries none.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account. Returns the public user record.
	Register(ctx context.Context, creds models.CredentialsRequest) (models.User, error)

	// Login authenticates and returns the user together with the issued
	// bearer token. The token is also stored via SetToken.
	Login(ctx context.Context, creds models.CredentialsRequest) (models.User, string, error)

	// Logout revokes the current token on the server.
	Logout(ctx context.Context) error

	// CurrentUser returns the user the current token belongs to.
	CurrentUser(ctx context.Context) (models.User, error)

	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// InsertNotes stores notes verbatim and returns how many were new.
	// The body carries an integrity hash when a hash key is configured.
	InsertNotes(ctx context.Context, notes []models.Note) (int, error)

	UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error

	// NotesRevision returns the fingerprint of the notes collection.
	NotesRevision(ctx context.Context) (models.NotesRevision, error)

	ListBackups(ctx context.Context) ([]models.BackupSummary, error)
	GetBackup(ctx context.Context, backupID string) (models.Backup, error)
	CreateBackup(ctx context.Context, req models.CreateBackupRequest) (models.Backup, error)
	DeleteBackup(ctx context.Context, backupID string) error

	GetPreferences(ctx context.Context) (models.UserPreferences, error)
	UpdatePreferences(ctx context.Context, update models.PreferencesUpdate) (models.UserPreferences, error)

	// UploadAttachment stores body under bucket/name.
	UploadAttachment(ctx context.Context, bucket models.Bucket, name string, body io.Reader) (models.AttachmentInfo, error)

	// AttachmentInfo issues a metadata-only request and reports the size
	// of the object.
	AttachmentInfo(ctx context.Context, bucket models.Bucket, name string) (models.AttachmentInfo, error)

	DeleteAttachment(ctx context.Context, bucket models.Bucket, name string) error

	// Version returns the server build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}
