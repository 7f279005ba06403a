package http

import (
	"bytes"
	"io"
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

func TestUploadAttachment(t *testing.T) {
	ts := newTestServer(t, "")
	ts.attachments.EXPECT().Upload(gomock.Any(), testUserID, models.BucketImages, "cat.png", gomock.Any()).
		DoAndReturn(func(_ any, _ int64, b models.Bucket, name string, body io.Reader) (models.AttachmentInfo, error) {
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			return models.AttachmentInfo{Bucket: b, Name: name, SizeBytes: int64(len(data))}, nil
		})

	rr := ts.do(http.MethodPut, "/api/storage/images/cat.png", []byte("png-bytes"), true)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"size_bytes":9`)
}

func TestAttachmentInfo(t *testing.T) {
	modified := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("size in headers, no body", func(t *testing.T) {
		ts := newTestServer(t, "")
		ts.attachments.EXPECT().Info(gomock.Any(), testUserID, models.BucketImages, "cat.png").
			Return(models.AttachmentInfo{SizeBytes: 1234, UpdatedAt: modified}, nil)

		rr := ts.do(http.MethodHead, "/api/storage/images/cat.png", nil, true, "Accept-Encoding", "gzip")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "1234", rr.Header().Get("Content-Length"))
		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Equal(t, modified.Format(http.TimeFormat), rr.Header().Get("Last-Modified"))
		assert.Zero(t, rr.Body.Len())
	})

	t.Run("missing object", func(t *testing.T) {
		ts := newTestServer(t, "")
		ts.attachments.EXPECT().Info(gomock.Any(), testUserID, models.BucketImages, "gone.png").
			Return(models.AttachmentInfo{}, store.ErrAttachmentNotFound)

		rr := ts.do(http.MethodHead, "/api/storage/images/gone.png", nil, true)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Zero(t, rr.Body.Len())
	})
}

func TestDownloadAttachment(t *testing.T) {
	ts := newTestServer(t, "")
	ts.attachments.EXPECT().Open(gomock.Any(), testUserID, models.BucketVoice, "memo.ogg").
		Return(io.NopCloser(bytes.NewReader([]byte("voice"))), models.AttachmentInfo{SizeBytes: 5}, nil)

	rr := ts.do(http.MethodGet, "/api/storage/voice/memo.ogg", nil, true, "Accept-Encoding", "gzip")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "voice", rr.Body.String())
	assert.Equal(t, "application/octet-stream", rr.Header().Get("Content-Type"))
}

func TestDeleteAttachment_InvalidName(t *testing.T) {
	ts := newTestServer(t, "")
	ts.attachments.EXPECT().Delete(gomock.Any(), testUserID, models.Bucket("docs"), "x").Return(store.ErrInvalidBucket)

	rr := ts.do(http.MethodDelete, "/api/storage/docs/x", nil, true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidAttachmentName, errorBody(t, rr))
}
