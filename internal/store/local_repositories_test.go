package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "nested", "client.db")
	s, err := NewClientStorages(context.Background(), config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestLocalSessionRepository(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	_, err := s.SessionRepository.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, s.SessionRepository.SaveSession(ctx, models.Session{UserID: 1, Email: "a@b.c", Token: "t1", CreatedAt: created}))
	require.NoError(t, s.SessionRepository.SaveSession(ctx, models.Session{UserID: 2, Email: "d@e.f", Token: "t2", CreatedAt: created}))

	session, err := s.SessionRepository.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), session.UserID)
	assert.Equal(t, "t2", session.Token)
	assert.True(t, session.CreatedAt.Equal(created))

	require.NoError(t, s.SessionRepository.ClearSession(ctx))
	require.NoError(t, s.SessionRepository.ClearSession(ctx))

	_, err = s.SessionRepository.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestExportHistoryRepository(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, format := range []models.ExportFormat{models.ExportXLSX, models.ExportZIP} {
		require.NoError(t, s.ExportHistoryRepository.SaveExport(ctx, models.ExportRecord{
			ID:        string(format),
			UserID:    1,
			Format:    format,
			FilePath:  "/tmp/notes" + format.Extension(),
			Checksum:  "abc",
			SizeBytes: 100,
			ItemCount: 3,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, s.ExportHistoryRepository.SaveExport(ctx, models.ExportRecord{
		ID: "other", UserID: 2, Format: models.ExportPDF, CreatedAt: base,
	}))

	records, err := s.ExportHistoryRepository.ListExports(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.ExportZIP, records[0].Format)
	assert.Equal(t, models.ExportXLSX, records[1].Format)
	assert.Equal(t, 3, records[0].ItemCount)
}
