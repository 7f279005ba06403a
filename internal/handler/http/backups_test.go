package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBackupID = "01960d3c-aaaa-7c2e-8a51-3c2f6d7e8a90"

func TestCreateBackup(t *testing.T) {
	ts := newTestServer(t, "")
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	req := models.CreateBackupRequest{
		BackupName: "Manual backup 2026-03-01 10:00",
		BackupType: models.BackupManual,
		Payload:    models.NewBackupPayload([]models.Note{testNote()}, now),
	}

	ts.backups.EXPECT().CreateBackup(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ any, _ int64, got models.CreateBackupRequest) (models.Backup, error) {
			assert.Equal(t, req.BackupName, got.BackupName)
			assert.Equal(t, 1, got.Payload.NoteCount)
			return models.Backup{ID: testBackupID, BackupDate: now, BackupType: got.BackupType}, nil
		})

	rr := ts.do(http.MethodPost, "/api/backups", req, true)

	require.Equal(t, http.StatusCreated, rr.Code)
	var backup models.Backup
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &backup))
	assert.Equal(t, testBackupID, backup.ID)
}

func TestCreateBackup_UnsupportedPayloadVersion(t *testing.T) {
	ts := newTestServer(t, "")

	body := `{"backup_name":"b","backup_type":"manual","backup_data":{"payload_version":99,"notes":[]}}`
	rr := ts.do(http.MethodPost, "/api/backups", body, true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, errorBody(t, rr))
}

func TestListBackups_Empty(t *testing.T) {
	ts := newTestServer(t, "")
	ts.backups.EXPECT().ListBackups(gomock.Any(), testUserID).Return(nil, nil)

	rr := ts.do(http.MethodGet, "/api/backups", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetBackup(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "tombstoned", err: store.ErrBackupNotFound, wantStatus: http.StatusNotFound, wantError: app.MsgBackupNotFound},
		{name: "transient", err: fmt.Errorf("get backup: %w", store.ErrTransient), wantStatus: http.StatusServiceUnavailable, wantError: app.MsgServiceUnavailable},
		{name: "unexpected", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError, wantError: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, "")
			ts.backups.EXPECT().GetBackup(gomock.Any(), testUserID, testBackupID).
				Return(models.Backup{ID: testBackupID}, tt.err)

			rr := ts.do(http.MethodGet, "/api/backups/"+testBackupID, nil, true)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorBody(t, rr))
			}
		})
	}
}

func TestDeleteBackup(t *testing.T) {
	ts := newTestServer(t, "")
	ts.backups.EXPECT().DeleteBackup(gomock.Any(), testUserID, testBackupID).Return(nil)

	rr := ts.do(http.MethodDelete, "/api/backups/"+testBackupID, nil, true)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestPreferences(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		ts := newTestServer(t, "")
		ts.prefs.EXPECT().GetPreferences(gomock.Any(), testUserID).Return(models.DefaultPreferences(testUserID), nil)

		rr := ts.do(http.MethodGet, "/api/preferences", nil, true)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":7,"backup_enabled":true}`, rr.Body.String())
	})

	t.Run("put", func(t *testing.T) {
		ts := newTestServer(t, "")
		off := false
		update := models.PreferencesUpdate{BackupEnabled: &off}
		ts.prefs.EXPECT().UpdatePreferences(gomock.Any(), testUserID, update).
			Return(models.UserPreferences{ID: testUserID}, nil)

		rr := ts.do(http.MethodPut, "/api/preferences", update, true)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":7,"backup_enabled":false}`, rr.Body.String())
	})
}
