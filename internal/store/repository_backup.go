package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// backupRepository is the PostgreSQL-backed implementation of
// [BackupRepository]. The payload lives in a jsonb column.
type backupRepository struct {
	*DB
	logger *logger.Logger
}

// NewBackupRepository constructs a [BackupRepository] backed by db.
func NewBackupRepository(db *DB, logger *logger.Logger) BackupRepository {
	return &backupRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateBackup stores backup as given.
func (r *backupRepository) CreateBackup(ctx context.Context, backup models.Backup) (models.Backup, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(backup.Payload)
	if err != nil {
		return models.Backup{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	query, args, err := buildInsertBackupQuery(ctx, backup, payload)
	if err != nil {
		return models.Backup{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*backupRepository.CreateBackup").
			Int64("user_id", backup.OwnerID).
			Int("note_count", backup.Payload.NoteCount).
			Msg("failed to insert backup")
		return models.Backup{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	backup.IsDeleted = false
	return backup, nil
}

// ListBackups returns live backups of the user, newest first.
func (r *backupRepository) ListBackups(ctx context.Context, userID int64) ([]models.BackupSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBackupsQuery(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*backupRepository.ListBackups").
			Int64("user_id", userID).
			Msg("failed to execute query for listing backups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}
	defer rows.Close()

	backups := make([]models.BackupSummary, 0, 16)
	for rows.Next() {
		var (
			b          models.BackupSummary
			backupType string
		)
		if scanErr := rows.Scan(&b.ID, &b.BackupName, &backupType, &b.BackupDate, &b.NoteCount); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*backupRepository.ListBackups").
				Int64("user_id", userID).
				Msg("failed to scan backup row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		b.BackupType = models.BackupType(backupType)
		backups = append(backups, b)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return backups, nil
}

// GetBackup returns a live backup with its decoded payload.
func (r *backupRepository) GetBackup(ctx context.Context, userID int64, backupID string) (models.Backup, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBackupQuery(ctx, userID, backupID)
	if err != nil {
		return models.Backup{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		b          models.Backup
		backupType string
		payload    []byte
	)
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&b.ID, &b.OwnerID, &b.BackupName, &backupType, &b.BackupDate, &b.IsDeleted, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Backup{}, ErrBackupNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*backupRepository.GetBackup").
			Str("backup_id", backupID).
			Msg("failed to read backup")
		return models.Backup{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}
	b.BackupType = models.BackupType(backupType)

	if err = json.Unmarshal(payload, &b.Payload); err != nil {
		log.Err(err).
			Str("func", "*backupRepository.GetBackup").
			Str("backup_id", backupID).
			Msg("failed to decode backup payload")
		return models.Backup{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	return b, nil
}

// MarkBackupDeleted tombstones a backup. The row is kept.
func (r *backupRepository) MarkBackupDeleted(ctx context.Context, userID int64, backupID string) error {
	query, args, err := buildTombstoneBackupQuery(ctx, userID, backupID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*backupRepository.MarkBackupDeleted").
			Str("backup_id", backupID).
			Msg("failed to tombstone backup")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBackupNotFound
	}

	return nil
}
