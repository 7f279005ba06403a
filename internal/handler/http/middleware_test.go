package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestGZip_CompressesJSONReplies(t *testing.T) {
	ts := newTestServer(t, "")
	ts.notes.EXPECT().ListNotes(gomock.Any(), testUserID).Return([]models.Note{testNote()}, nil)

	rr := ts.do(http.MethodGet, "/api/notes", nil, true, "Accept-Encoding", "gzip")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(plain), testNoteID)
}

func TestGZip_InflatesRequestBody(t *testing.T) {
	ts := newTestServer(t, "")
	ts.auth.EXPECT().VerifyEmail(gomock.Any(), models.VerifyEmailRequest{Token: "t"}).Return(nil)

	body := gzipBytes(t, []byte(`{"token":"t"}`))
	rr := ts.do(http.MethodPost, "/api/auth/verify", body, false, "Content-Encoding", "gzip")

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestGZip_BrokenRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain text"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCompressible(t *testing.T) {
	tests := []struct {
		method, path, accept string
		want                 bool
	}{
		{http.MethodGet, "/api/notes", "gzip, deflate", true},
		{http.MethodGet, "/api/notes", "", false},
		{http.MethodHead, "/api/notes", "gzip", false},
		{http.MethodGet, "/api/storage/images/a.png", "gzip", false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		req.Header.Set("Accept-Encoding", tt.accept)
		assert.Equal(t, tt.want, compressible(req), "%s %s %q", tt.method, tt.path, tt.accept)
	}
}

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	})

	req := httptest.NewRequest(http.MethodGet, "/brew", nil)
	l := zerolog.New(&buf)
	req = req.WithContext(l.WithContext(req.Context()))

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, `"status":418`)
	assert.Contains(t, line, `"size":3`)
	assert.Contains(t, line, `"uri":"/brew"`)
	assert.Contains(t, line, `"route":"unmatched"`)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, err := w.Write([]byte("ok"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 2, w.size)
}

func TestBodyHash_RestoresBody(t *testing.T) {
	utils.InitHasherPool(testKey)
	h := &Handler{hashKey: testKey, logger: logger.Nop()}

	payload := []byte(`{"notes":[]}`)
	var got []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = io.ReadAll(r.Body)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set(BodyHashHeader, utils.HashString(string(payload), testKey))
	rr := httptest.NewRecorder()
	h.bodyHash(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, payload, got)
}
