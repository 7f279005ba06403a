// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListNotesQuery(_ context.Context, userID int64) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(tableNotes).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "id").
		ToSql()
}

func buildGetNoteQuery(_ context.Context, userID int64, noteID string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(tableNotes).
		Where(sq.Eq{"user_id": userID, "id": noteID}).
		ToSql()
}

func buildInsertNoteQuery(_ context.Context, note models.Note) (string, []any, error) {
	return psql.Insert(tableNotes).
		Columns(noteColumns...).
		Values(note.ID, note.OwnerID, note.Title, note.Content, note.ImageRef, note.CreatedAt, note.UpdatedAt).
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
}

// buildInsertNoteIfAbsentQuery inserts a note verbatim unless its ID is taken.
func buildInsertNoteIfAbsentQuery(_ context.Context, note models.Note) (string, []any, error) {
	return psql.Insert(tableNotes).
		Columns(noteColumns...).
		Values(note.ID, note.OwnerID, note.Title, note.Content, note.ImageRef, note.CreatedAt, note.UpdatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
}

// buildUpdateNoteQuery sets only the fields present in update and always
// bumps updated_at.
func buildUpdateNoteQuery(_ context.Context, userID int64, noteID string, update models.NoteUpdate, now time.Time) (string, []any, error) {
	b := psql.Update(tableNotes).Set("updated_at", now)

	if update.Title != nil {
		b = b.Set("title", *update.Title)
	}
	if update.Content != nil {
		b = b.Set("content", *update.Content)
	}
	switch {
	case update.ClearImage:
		b = b.Set("image_url", nil)
	case update.ImageRef != nil:
		b = b.Set("image_url", *update.ImageRef)
	}

	return b.Where(sq.Eq{"user_id": userID, "id": noteID}).
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
}

func buildDeleteNoteQuery(_ context.Context, userID int64, noteID string) (string, []any, error) {
	return psql.Delete(tableNotes).
		Where(sq.Eq{"user_id": userID, "id": noteID}).
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
}

func buildInsertBackupQuery(_ context.Context, backup models.Backup, payload []byte) (string, []any, error) {
	return psql.Insert(tableBackups).
		Columns("id", "user_id", "backup_name", "backup_type", "backup_date", "is_deleted", "backup_data").
		Values(backup.ID, backup.OwnerID, backup.BackupName, string(backup.BackupType), backup.BackupDate, false, payload).
		ToSql()
}

func buildListBackupsQuery(_ context.Context, userID int64) (string, []any, error) {
	return psql.Select(backupSummaryColumns...).
		From(tableBackups).
		Where(sq.Eq{"user_id": userID, "is_deleted": false}).
		OrderBy("backup_date DESC", "id").
		ToSql()
}

func buildGetBackupQuery(_ context.Context, userID int64, backupID string) (string, []any, error) {
	return psql.Select(backupColumns...).
		From(tableBackups).
		Where(sq.Eq{"user_id": userID, "id": backupID, "is_deleted": false}).
		ToSql()
}

func buildTombstoneBackupQuery(_ context.Context, userID int64, backupID string) (string, []any, error) {
	return psql.Update(tableBackups).
		Set("is_deleted", true).
		Where(sq.Eq{"user_id": userID, "id": backupID, "is_deleted": false}).
		ToSql()
}

func buildGetPreferencesQuery(_ context.Context, userID int64) (string, []any, error) {
	return psql.Select(preferencesColumns...).
		From(tablePreferences).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpdatePreferencesQuery(_ context.Context, userID int64, update models.PreferencesUpdate) (string, []any, error) {
	b := psql.Update(tablePreferences)

	if update.BackupEnabled != nil {
		b = b.Set("backup_enabled", *update.BackupEnabled)
	}
	if update.LastBackupDate != nil {
		b = b.Set("last_backup_date", *update.LastBackupDate)
	}

	return b.Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + strings.Join(preferencesColumns, ", ")).
		ToSql()
}
