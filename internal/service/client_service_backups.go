package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/benbjohnson/clock"
)

// BackupStaleAfter is the age of the last backup after which the automatic
// check creates a new one.
const BackupStaleAfter = 24 * time.Hour

type clientBackupService struct {
	notes   ClientNoteService
	adapter adapter.ServerAdapter
	clock   clock.Clock

	logger *logger.Logger
}

func NewClientBackupService(notes ClientNoteService, serverAdapter adapter.ServerAdapter, clk clock.Clock, logger *logger.Logger) ClientBackupService {
	if clk == nil {
		clk = clock.New()
	}
	return &clientBackupService{notes: notes, adapter: serverAdapter, clock: clk, logger: logger}
}

func (s *clientBackupService) CreateBackup(ctx context.Context, session models.Session, backupType models.BackupType) (models.Backup, error) {
	if !backupType.Valid() {
		return models.Backup{}, ErrInvalidDataProvided
	}

	notes, err := s.notes.ListRaw(ctx, session)
	if err != nil {
		return models.Backup{}, err
	}

	return s.create(ctx, session, backupType, notes)
}

// create stores notes as they are. They are still sealed, so the payload
// never holds plaintext and is never sealed twice.
func (s *clientBackupService) create(ctx context.Context, session models.Session, backupType models.BackupType, notes []models.Note) (models.Backup, error) {
	if len(notes) == 0 {
		return models.Backup{}, ErrNoNotes
	}
	log := logger.FromContext(ctx)

	now := s.clock.Now().UTC()
	req := models.CreateBackupRequest{
		BackupName: backupName(backupType, now),
		BackupType: backupType,
		Payload:    models.NewBackupPayload(notes, now),
	}

	authCtx := adapter.WithToken(ctx, session.Token)
	backup, err := s.adapter.CreateBackup(authCtx, req)
	if err != nil {
		return models.Backup{}, mapAdapterError(err)
	}

	backupDate := backup.BackupDate
	if backupDate.IsZero() {
		backupDate = now
	}
	if _, err = s.adapter.UpdatePreferences(authCtx, models.PreferencesUpdate{LastBackupDate: &backupDate}); err != nil {
		// the backup exists; the next check compares against the backup list instead
		log.Warn().Err(err).Str("func", "*clientBackupService.create").Str("backup_id", backup.ID).Msg("last backup date was not advanced")
	}

	log.Info().
		Str("backup_id", backup.ID).
		Str("backup_type", string(backupType)).
		Int("note_count", len(notes)).
		Msg("backup created")

	return backup, nil
}

func (s *clientBackupService) ScheduleCheck(ctx context.Context, session models.Session) (bool, error) {
	if !session.Valid() {
		return false, ErrNotAuthenticated
	}
	log := logger.FromContext(ctx)
	authCtx := adapter.WithToken(ctx, session.Token)

	prefs, err := s.adapter.GetPreferences(authCtx)
	if err != nil {
		return false, mapAdapterError(err)
	}
	if !prefs.BackupEnabled {
		return false, nil
	}

	notes, err := s.notes.ListRaw(ctx, session)
	if err != nil {
		return false, err
	}
	if len(notes) == 0 {
		return false, nil
	}

	last, err := s.lastBackupDate(authCtx, prefs)
	if err != nil {
		return false, err
	}
	if last != nil && s.clock.Now().Sub(*last) <= BackupStaleAfter {
		return false, nil
	}

	if _, err = s.create(ctx, session, models.BackupAuto, notes); err != nil {
		log.Err(err).Str("func", "*clientBackupService.ScheduleCheck").Msg("automatic backup failed")
		return false, err
	}

	return true, nil
}

// lastBackupDate prefers the stored marker and falls back to the newest
// backup in the list.
func (s *clientBackupService) lastBackupDate(ctx context.Context, prefs models.UserPreferences) (*time.Time, error) {
	if prefs.LastBackupDate != nil {
		return prefs.LastBackupDate, nil
	}

	backups, err := s.adapter.ListBackups(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	if len(backups) == 0 {
		return nil, nil
	}

	newest := backups[0].BackupDate
	for _, b := range backups[1:] {
		if b.BackupDate.After(newest) {
			newest = b.BackupDate
		}
	}
	return &newest, nil
}

func (s *clientBackupService) Restore(ctx context.Context, session models.Session, backupID string, strategy models.RestoreStrategy) (int, error) {
	if strategy == "" {
		strategy = models.RestoreMerge
	}
	if strategy != models.RestoreMerge {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedRestoreStrategy, strategy)
	}
	ctx, err := authorize(ctx, session)
	if err != nil {
		return 0, err
	}
	log := logger.FromContext(ctx)

	backup, err := s.adapter.GetBackup(ctx, backupID)
	if err != nil {
		return 0, mapAdapterError(err)
	}

	current, err := s.notes.ListRaw(ctx, session)
	if err != nil {
		return 0, err
	}

	missing := missingNotes(backup.Payload.Notes, current)
	if len(missing) == 0 {
		log.Info().Str("backup_id", backupID).Msg("nothing to restore")
		return 0, nil
	}

	inserted, err := s.notes.InsertRaw(ctx, session, missing)
	if err != nil {
		return 0, err
	}

	log.Info().Str("backup_id", backupID).Int("restored", inserted).Msg("backup restored")
	return inserted, nil
}

func (s *clientBackupService) Delete(ctx context.Context, session models.Session, backupID string) error {
	ctx, err := authorize(ctx, session)
	if err != nil {
		return err
	}

	if err = s.adapter.DeleteBackup(ctx, backupID); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientBackupService) List(ctx context.Context, session models.Session) ([]models.BackupSummary, error) {
	ctx, err := authorize(ctx, session)
	if err != nil {
		return nil, err
	}

	backups, err := s.adapter.ListBackups(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return backups, nil
}

func (s *clientBackupService) SetAutoBackup(ctx context.Context, session models.Session, enabled bool) (models.UserPreferences, error) {
	ctx, err := authorize(ctx, session)
	if err != nil {
		return models.UserPreferences{}, err
	}

	prefs, err := s.adapter.UpdatePreferences(ctx, models.PreferencesUpdate{BackupEnabled: &enabled})
	if err != nil {
		return models.UserPreferences{}, mapAdapterError(err)
	}
	return prefs, nil
}

// missingNotes returns the notes of backup whose IDs are absent from current,
// in backup order.
func missingNotes(backup, current []models.Note) []models.Note {
	existing := make(map[string]struct{}, len(current))
	for _, n := range current {
		existing[n.ID] = struct{}{}
	}

	var missing []models.Note
	for _, n := range backup {
		if _, ok := existing[n.ID]; ok {
			continue
		}
		existing[n.ID] = struct{}{}
		missing = append(missing, n)
	}
	return missing
}

func backupName(backupType models.BackupType, at time.Time) string {
	label := "Manual"
	if backupType == models.BackupAuto {
		label = "Automatic"
	}
	return fmt.Sprintf("%s backup %s", label, at.Format("2006-01-02 15:04"))
}
