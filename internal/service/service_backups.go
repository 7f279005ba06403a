package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// backupService stores backup snapshots. Payload notes are kept sealed and
// verbatim.
type backupService struct {
	backupRepository store.BackupRepository

	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewBackupService(backupRepository store.BackupRepository, logger *logger.Logger) BackupService {
	return &backupService{
		backupRepository: backupRepository,
		validator:        validators.NewNoteValidator(),
		ids:              utils.NewUUIDGenerator(),
		now:              time.Now,
		logger:           logger,
	}
}

// CreateBackup assigns the backup ID and date. The payload is stored as
// received.
func (s *backupService) CreateBackup(ctx context.Context, userID int64, req models.CreateBackupRequest) (models.Backup, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return models.Backup{}, invalid(validators.ErrInvalidUserID)
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*backupService.CreateBackup").Int64("user_id", userID).Msg("invalid backup request")
		return models.Backup{}, invalid(err)
	}

	backup, err := s.backupRepository.CreateBackup(ctx, models.Backup{
		ID:         s.ids.Generate(),
		OwnerID:    userID,
		BackupName: req.BackupName,
		BackupType: req.BackupType,
		BackupDate: s.now().UTC(),
		Payload:    req.Payload,
	})
	if err != nil {
		return models.Backup{}, fmt.Errorf("create backup: %w", err)
	}

	backupsCreated.WithLabelValues(string(backup.BackupType)).Inc()
	backupNoteCount.Observe(float64(backup.Payload.NoteCount))

	log.Info().
		Int64("user_id", userID).
		Str("backup_id", backup.ID).
		Str("backup_type", string(backup.BackupType)).
		Int("note_count", backup.Payload.NoteCount).
		Msg("backup created")

	return backup, nil
}

func (s *backupService) ListBackups(ctx context.Context, userID int64) ([]models.BackupSummary, error) {
	return s.backupRepository.ListBackups(ctx, userID)
}

func (s *backupService) GetBackup(ctx context.Context, userID int64, backupID string) (models.Backup, error) {
	if !utils.IsUUID(backupID) {
		return models.Backup{}, invalid(validators.ErrInvalidBackupID)
	}
	return s.backupRepository.GetBackup(ctx, userID, backupID)
}

// DeleteBackup tombstones the backup; it stays in storage.
func (s *backupService) DeleteBackup(ctx context.Context, userID int64, backupID string) error {
	if !utils.IsUUID(backupID) {
		return invalid(validators.ErrInvalidBackupID)
	}
	return s.backupRepository.MarkBackupDeleted(ctx, userID, backupID)
}
