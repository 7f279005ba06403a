package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var validBackupNote = models.Note{
	ID:        noteID,
	Content:   "U2FsdGVkX1x",
	CreatedAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	UpdatedAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
}

func newTestBackupService(t *testing.T) (*backupService, *mock.MockBackupRepository) {
	t.Helper()
	repo := mock.NewMockBackupRepository(gomock.NewController(t))
	return NewBackupService(repo, logger.Nop()).(*backupService), repo
}

func TestBackupService_CreateBackup(t *testing.T) {
	svc, repo := newTestBackupService(t)
	now := time.Date(2026, 4, 4, 4, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	notes := []models.Note{validBackupNote}
	req := models.CreateBackupRequest{
		BackupName: "Manual backup",
		BackupType: models.BackupManual,
		Payload:    models.NewBackupPayload(notes, now),
	}

	repo.EXPECT().CreateBackup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Backup) (models.Backup, error) {
			assert.True(t, utils.IsUUID(b.ID))
			assert.Equal(t, int64(9), b.OwnerID)
			assert.Equal(t, now, b.BackupDate)
			assert.Equal(t, notes, b.Payload.Notes)
			return b, nil
		})

	backup, err := svc.CreateBackup(context.Background(), 9, req)

	require.NoError(t, err)
	assert.Equal(t, models.BackupManual, backup.BackupType)
}

func TestBackupService_CreateBackup_Invalid(t *testing.T) {
	svc, _ := newTestBackupService(t)

	tests := []struct {
		name    string
		req     models.CreateBackupRequest
		wantErr error
	}{
		{
			name:    "unknown type",
			req:     models.CreateBackupRequest{BackupName: "b", BackupType: "weekly", Payload: models.NewBackupPayload([]models.Note{validBackupNote}, time.Now())},
			wantErr: validators.ErrInvalidBackupType,
		},
		{
			name:    "missing name",
			req:     models.CreateBackupRequest{BackupType: models.BackupAuto, Payload: models.NewBackupPayload([]models.Note{validBackupNote}, time.Now())},
			wantErr: validators.ErrEmptyBackupName,
		},
		{
			name: "count mismatch",
			req: models.CreateBackupRequest{
				BackupName: "b",
				BackupType: models.BackupAuto,
				Payload:    models.BackupPayload{PayloadVersion: 1, Notes: []models.Note{validBackupNote}, NoteCount: 5},
			},
			wantErr: validators.ErrNoteCountMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBackup(context.Background(), 9, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBackupService_GetAndDelete_CheckID(t *testing.T) {
	svc, repo := newTestBackupService(t)
	ctx := context.Background()

	_, err := svc.GetBackup(ctx, 9, "nope")
	assert.ErrorIs(t, err, validators.ErrInvalidBackupID)
	assert.ErrorIs(t, svc.DeleteBackup(ctx, 9, "nope"), validators.ErrInvalidBackupID)

	repo.EXPECT().GetBackup(gomock.Any(), int64(9), noteID).Return(models.Backup{}, store.ErrBackupNotFound)
	repo.EXPECT().MarkBackupDeleted(gomock.Any(), int64(9), noteID).Return(nil)

	_, err = svc.GetBackup(ctx, 9, noteID)
	assert.ErrorIs(t, err, store.ErrBackupNotFound)
	assert.NoError(t, svc.DeleteBackup(ctx, 9, noteID))
}

func TestBackupService_ListBackups(t *testing.T) {
	svc, repo := newTestBackupService(t)
	want := []models.BackupSummary{{ID: "b2"}, {ID: "b1"}}
	repo.EXPECT().ListBackups(gomock.Any(), int64(9)).Return(want, nil)

	got, err := svc.ListBackups(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
