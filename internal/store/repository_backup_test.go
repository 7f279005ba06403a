package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackupRepo(t *testing.T) (*backupRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &backupRepository{DB: db, logger: logger.Nop()}, mock
}

func TestBackupRepository_CreateBackup(t *testing.T) {
	repo, mock := newTestBackupRepo(t)

	backup := models.Backup{
		ID:         "b1",
		OwnerID:    1,
		BackupName: "Manual backup",
		BackupType: models.BackupManual,
		BackupDate: fixedNow,
		Payload: models.NewBackupPayload([]models.Note{
			{ID: "n1", Title: "U2FsdGVkX1t", Content: "U2FsdGVkX1c"},
		}, fixedNow),
	}

	mock.ExpectExec(`INSERT INTO note_backups \(id,user_id,backup_name,backup_type,backup_date,is_deleted,backup_data\)`).
		WithArgs("b1", int64(1), "Manual backup", "manual", fixedNow, false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateBackup(context.Background(), backup)
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)
	assert.False(t, created.IsDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupRepository_CreateBackup_ExecError(t *testing.T) {
	repo, mock := newTestBackupRepo(t)

	mock.ExpectExec(`INSERT INTO note_backups`).WillReturnError(errors.New("boom"))

	_, err := repo.CreateBackup(context.Background(), models.Backup{ID: "b1", BackupType: models.BackupAuto})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestBackupRepository_ListBackups(t *testing.T) {
	repo, mock := newTestBackupRepo(t)

	older := fixedNow.Add(-48 * time.Hour)
	mock.ExpectQuery(`SELECT .* FROM note_backups WHERE is_deleted = \$1 AND user_id = \$2 ORDER BY backup_date DESC, id`).
		WithArgs(false, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "backup_name", "backup_type", "backup_date", "note_count"}).
			AddRow("b2", "Auto backup", "auto", fixedNow, 3).
			AddRow("b1", "Manual backup", "manual", older, 2))

	backups, err := repo.ListBackups(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, "b2", backups[0].ID)
	assert.Equal(t, models.BackupAuto, backups[0].BackupType)
	assert.Equal(t, 3, backups[0].NoteCount)
	assert.Equal(t, models.BackupManual, backups[1].BackupType)
}

func TestBackupRepository_GetBackup(t *testing.T) {
	cols := []string{"id", "user_id", "backup_name", "backup_type", "backup_date", "is_deleted", "backup_data"}

	t.Run("versioned payload", func(t *testing.T) {
		repo, mock := newTestBackupRepo(t)
		payload := `{"payload_version":1,"notes":[{"id":"n1","title":"U2FsdGVkX1t","content":"U2FsdGVkX1c"}],"note_count":1,"timestamp":"2026-03-01T12:00:00Z"}`
		mock.ExpectQuery(`SELECT .* FROM note_backups WHERE id = \$1 AND is_deleted = \$2 AND user_id = \$3`).
			WithArgs("b1", false, int64(1)).
			WillReturnRows(sqlmock.NewRows(cols).AddRow("b1", 1, "Manual", "manual", fixedNow, false, []byte(payload)))

		backup, err := repo.GetBackup(context.Background(), 1, "b1")
		require.NoError(t, err)
		require.Len(t, backup.Payload.Notes, 1)
		assert.Equal(t, "U2FsdGVkX1t", backup.Payload.Notes[0].Title)
		assert.Equal(t, 1, backup.Payload.PayloadVersion)
	})

	t.Run("unversioned payload reads as v1", func(t *testing.T) {
		repo, mock := newTestBackupRepo(t)
		payload := `{"notes":[{"id":"n1"},{"id":"n2"}],"timestamp":"2026-03-01T12:00:00Z"}`
		mock.ExpectQuery(`SELECT .* FROM note_backups`).
			WillReturnRows(sqlmock.NewRows(cols).AddRow("b1", 1, "Old", "auto", fixedNow, false, []byte(payload)))

		backup, err := repo.GetBackup(context.Background(), 1, "b1")
		require.NoError(t, err)
		assert.Equal(t, 1, backup.Payload.PayloadVersion)
		assert.Equal(t, 2, backup.Payload.NoteCount)
	})

	t.Run("unknown payload version", func(t *testing.T) {
		repo, mock := newTestBackupRepo(t)
		mock.ExpectQuery(`SELECT .* FROM note_backups`).
			WillReturnRows(sqlmock.NewRows(cols).AddRow("b1", 1, "Future", "auto", fixedNow, false, []byte(`{"payload_version":7,"notes":[]}`)))

		_, err := repo.GetBackup(context.Background(), 1, "b1")
		assert.ErrorIs(t, err, ErrEncodingPayload)
		assert.ErrorIs(t, err, models.ErrUnsupportedPayloadVersion)
	})

	t.Run("missing or tombstoned", func(t *testing.T) {
		repo, mock := newTestBackupRepo(t)
		mock.ExpectQuery(`SELECT .* FROM note_backups`).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetBackup(context.Background(), 1, "b1")
		assert.ErrorIs(t, err, ErrBackupNotFound)
	})
}

func TestBackupRepository_MarkBackupDeleted(t *testing.T) {
	t.Run("tombstones", func(t *testing.T) {
		repo, mock := newTestBackupRepo(t)
		mock.ExpectExec(`UPDATE note_backups SET is_deleted = \$1 WHERE id = \$2 AND is_deleted = \$3 AND user_id = \$4`).
			WithArgs(true, "b1", false, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.MarkBackupDeleted(context.Background(), 1, "b1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already deleted", func(t *testing.T) {
		repo, mock := newTestBackupRepo(t)
		mock.ExpectExec(`UPDATE note_backups`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.MarkBackupDeleted(context.Background(), 1, "b1"), ErrBackupNotFound)
	})
}
