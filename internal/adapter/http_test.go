// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}
	appCfg := config.ClientApp{HashKey: testHashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://notes.example.com/", want: "https://notes.example.com"},
		{in: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
	}
	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var creds models.CredentialsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice@example.com", creds.Email)

		writeJSON(t, w, http.StatusCreated, models.User{UserID: 7, Email: creds.Email})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.CredentialsRequest{Email: "alice@example.com", Password: "password1"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Empty(t, a.Token(), "регистрация не выдаёт токен")
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, utils.ErrorResponse{Error: "email already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.CredentialsRequest{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "conflict: email already exists", err.Error())
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer signed.jwt.value")
		writeJSON(t, w, http.StatusOK, models.User{UserID: 3, Email: "a@b.io"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, token, err := a.Login(context.Background(), models.CredentialsRequest{Email: "a@b.io", Password: "password1"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.Equal(t, "signed.jwt.value", token)
	assert.Equal(t, "signed.jwt.value", a.Token())
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.User{UserID: 3})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, _, err := a.Login(context.Background(), models.CredentialsRequest{Email: "a@b.io"})

	assert.ErrorIs(t, err, ErrNoToken)
}

func TestLogin_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, utils.ErrorResponse{Error: "email is not verified"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, _, err := a.Login(context.Background(), models.CredentialsRequest{Email: "a@b.io"})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "email is not verified")
}

func TestLogout_ClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.Token())
}

// ── Token precedence ────────────────────────────────────────────────────────

func TestAuthedRequest_ContextTokenWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer from-ctx", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.Note{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored")

	_, err := a.ListNotes(WithToken(context.Background(), "from-ctx"))
	require.NoError(t, err)
}

// ── Notes ───────────────────────────────────────────────────────────────────

func TestListNotes_Success(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	want := []models.Note{{ID: "n1", OwnerID: 1, Title: "U2FsdGVkX1a", Content: "U2FsdGVkX1b", CreatedAt: now, UpdatedAt: now}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListNotes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetNote_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/missing", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, utils.ErrorResponse{Error: "note was not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetNote(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsertNotes_SignsBody(t *testing.T) {
	utils.InitHasherPool(testHashKey)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/batch", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, hex.EncodeToString(utils.Hash(body)), r.Header.Get(BodyHashHeader))

		var req models.InsertNotesRequest
		require.NoError(t, json.Unmarshal(body, &req))
		writeJSON(t, w, http.StatusOK, models.InsertNotesResponse{Inserted: len(req.Notes)})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	n, err := a.InsertNotes(context.Background(), []models.Note{{ID: "a"}, {ID: "b"}})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestUpdateNote_UsesPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/notes/n1", r.URL.Path)

		var upd models.NoteUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&upd))
		require.NotNil(t, upd.Title)
		writeJSON(t, w, http.StatusOK, models.Note{ID: "n1", Title: *upd.Title})
	}))
	defer srv.Close()

	title := "U2FsdGVkX1new"
	a := newTestAdapter(t, srv.URL)
	got, err := a.UpdateNote(context.Background(), "n1", models.NoteUpdate{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, title, got.Title)
}

func TestNotesRevision(t *testing.T) {
	ts := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/revision", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.NotesRevision{Count: 4, LastUpdatedAt: &ts})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	rev, err := a.NotesRevision(context.Background())

	require.NoError(t, err)
	assert.True(t, rev.Equal(models.NotesRevision{Count: 4, LastUpdatedAt: &ts}))
}

// ── Backups ─────────────────────────────────────────────────────────────────

func TestGetBackup_UnsupportedPayloadVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"b1","backup_data":{"payload_version":9,"notes":[]}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetBackup(context.Background(), "b1")

	assert.ErrorIs(t, err, models.ErrUnsupportedPayloadVersion)
}

func TestGetBackup_LegacyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"b1","backup_data":{"notes":[{"id":"n1"},{"id":"n2"}]}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	b, err := a.GetBackup(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, 1, b.Payload.PayloadVersion)
	assert.Equal(t, 2, b.Payload.NoteCount)
}

func TestCreateBackup_Success(t *testing.T) {
	utils.InitHasherPool(testHashKey)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/backups", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(BodyHashHeader))

		var req models.CreateBackupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(t, w, http.StatusCreated, models.Backup{ID: "b1", BackupName: req.BackupName, BackupType: req.BackupType, Payload: req.Payload})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	payload := models.NewBackupPayload([]models.Note{{ID: "n1"}}, time.Now().UTC())
	b, err := a.CreateBackup(context.Background(), models.CreateBackupRequest{BackupName: "Manual", BackupType: models.BackupManual, Payload: payload})

	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, 1, b.Payload.NoteCount)
}

func TestDeleteBackup_ServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteBackup(context.Background(), "b1")

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

// ── Storage ─────────────────────────────────────────────────────────────────

func TestAttachmentInfo_ReadsContentLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.Equal(t, "/api/storage/images/photo.png", r.URL.Path)
		w.Header().Set("Content-Length", "2048")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	info, err := a.AttachmentInfo(context.Background(), models.BucketImages, "photo.png")

	require.NoError(t, err)
	assert.Equal(t, int64(2048), info.SizeBytes)
	assert.Equal(t, models.BucketImages, info.Bucket)
}

func TestUploadAttachment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "voice-bytes", string(body))
		writeJSON(t, w, http.StatusCreated, models.AttachmentInfo{Bucket: models.BucketVoice, Name: "memo.ogg", SizeBytes: int64(len(body))})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	info, err := a.UploadAttachment(context.Background(), models.BucketVoice, "memo.ogg", strings.NewReader("voice-bytes"))

	require.NoError(t, err)
	assert.Equal(t, int64(11), info.SizeBytes)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", errorMessage([]byte(`{"error":"boom"}`)))
	assert.Equal(t, "plain text", errorMessage([]byte(" plain text\n")))
	assert.Equal(t, `{"other":1}`, errorMessage([]byte(`{"other":1}`)))
}
