package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type preferencesRepository struct {
	*DB
	logger *logger.Logger
}

// NewPreferencesRepository constructs a [PreferencesRepository] backed by db.
func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	return &preferencesRepository{
		DB:     db,
		logger: logger,
	}
}

// GetOrCreatePreferences inserts the default record if missing and returns
// the stored one.
func (r *preferencesRepository) GetOrCreatePreferences(ctx context.Context, userID int64) (models.UserPreferences, error) {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, ensurePreferences, userID); err != nil {
		log.Err(err).
			Str("func", "*preferencesRepository.GetOrCreatePreferences").
			Int64("user_id", userID).
			Msg("failed to create default preferences")
		return models.UserPreferences{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	query, args, err := buildGetPreferencesQuery(ctx, userID)
	if err != nil {
		return models.UserPreferences{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPreferences(ctx, query, args)
}

// UpdatePreferences applies a partial update. The record must exist.
// An empty update returns the current record.
func (r *preferencesRepository) UpdatePreferences(ctx context.Context, userID int64, update models.PreferencesUpdate) (models.UserPreferences, error) {
	if update.BackupEnabled == nil && update.LastBackupDate == nil {
		return r.GetOrCreatePreferences(ctx, userID)
	}

	query, args, err := buildUpdatePreferencesQuery(ctx, userID, update)
	if err != nil {
		return models.UserPreferences{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPreferences(ctx, query, args)
}

func (r *preferencesRepository) queryPreferences(ctx context.Context, query string, args []any) (models.UserPreferences, error) {
	var (
		prefs    models.UserPreferences
		lastDate sql.NullTime
	)

	err := r.DB.QueryRowContext(ctx, query, args...).Scan(&prefs.ID, &prefs.BackupEnabled, &lastDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserPreferences{}, ErrNoUserWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*preferencesRepository.queryPreferences").
			Msg("failed to read preferences")
		return models.UserPreferences{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}
	if lastDate.Valid {
		t := lastDate.Time
		prefs.LastBackupDate = &t
	}

	return prefs, nil
}
