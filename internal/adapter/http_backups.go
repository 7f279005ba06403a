package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ListBackups implements [ServerAdapter] via GET /api/backups.
func (h *httpServerAdapter) ListBackups(ctx context.Context) ([]models.BackupSummary, error) {
	var backups []models.BackupSummary
	if err := h.getJSON(ctx, "/api/backups", &backups); err != nil {
		return nil, fmt.Errorf("list backups request: %w", err)
	}
	return backups, nil
}

// GetBackup implements [ServerAdapter] via GET /api/backups/{id}.
// Payloads of an unknown version fail to decode with
// [models.ErrUnsupportedPayloadVersion].
func (h *httpServerAdapter) GetBackup(ctx context.Context, backupID string) (models.Backup, error) {
	var backup models.Backup
	if err := h.getJSON(ctx, backupPath(backupID), &backup); err != nil {
		return models.Backup{}, fmt.Errorf("get backup request: %w", err)
	}
	return backup, nil
}

// CreateBackup implements [ServerAdapter] via POST /api/backups.
func (h *httpServerAdapter) CreateBackup(ctx context.Context, req models.CreateBackupRequest) (models.Backup, error) {
	r, err := h.hashedRequest(ctx, req)
	if err != nil {
		return models.Backup{}, err
	}

	var backup models.Backup
	resp, err := r.SetResult(&backup).Post("/api/backups")
	if err != nil {
		return models.Backup{}, fmt.Errorf("create backup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Backup{}, err
	}

	return backup, nil
}

// DeleteBackup implements [ServerAdapter] via DELETE /api/backups/{id}.
func (h *httpServerAdapter) DeleteBackup(ctx context.Context, backupID string) error {
	resp, err := h.authedRequest(ctx).Delete(backupPath(backupID))
	if err != nil {
		return fmt.Errorf("delete backup request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetPreferences implements [ServerAdapter] via GET /api/preferences.
func (h *httpServerAdapter) GetPreferences(ctx context.Context) (models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := h.getJSON(ctx, "/api/preferences", &prefs); err != nil {
		return models.UserPreferences{}, fmt.Errorf("get preferences request: %w", err)
	}
	return prefs, nil
}

// UpdatePreferences implements [ServerAdapter] via PUT /api/preferences.
func (h *httpServerAdapter) UpdatePreferences(ctx context.Context, update models.PreferencesUpdate) (models.UserPreferences, error) {
	var prefs models.UserPreferences

	resp, err := h.authedRequest(ctx).
		SetBody(update).
		SetResult(&prefs).
		Put("/api/preferences")
	if err != nil {
		return models.UserPreferences{}, fmt.Errorf("update preferences request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPreferences{}, err
	}

	return prefs, nil
}

func backupPath(backupID string) string {
	return "/api/backups/" + url.PathEscape(backupID)
}
