package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken  = "token-7"
	testUserID = int64(7)
	testKey    = "hash-key"
)

// testServer собирает роутер с моками всех сервисов.
type testServer struct {
	router http.Handler

	auth        *mock.MockAuthService
	notes       *mock.MockNoteService
	backups     *mock.MockBackupService
	prefs       *mock.MockPreferencesService
	attachments *mock.MockAttachmentService
	appInfo     *mock.MockAppInfoService
}

func newTestServer(t *testing.T, hashKey string) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		auth:        mock.NewMockAuthService(ctrl),
		notes:       mock.NewMockNoteService(ctrl),
		backups:     mock.NewMockBackupService(ctrl),
		prefs:       mock.NewMockPreferencesService(ctrl),
		attachments: mock.NewMockAttachmentService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:        ts.auth,
		NoteService:        ts.notes,
		BackupService:      ts.backups,
		PreferencesService: ts.prefs,
		AttachmentService:  ts.attachments,
		AppInfoService:     ts.appInfo,
	}

	// любой запрос с testToken считается аутентифицированным
	ts.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: testUserID}, nil).AnyTimes()

	ts.router = NewHandler(services, config.App{HashKey: hashKey}, logger.Nop()).Init()
	return ts
}

// do выполняет запрос; authed добавляет заголовок Authorization.
func (ts *testServer) do(method, target string, body any, authed bool, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, _ := json.Marshal(b)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var er utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &er), rr.Body.String())
	return er.Error
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, config.App{HashKey: testKey}, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, testKey, h.hashKey)
}

func TestInit_Version(t *testing.T) {
	ts := newTestServer(t, "")
	ts.appInfo.EXPECT().GetVersionInfo(gomock.Any()).
		Return(models.VersionResponse{Version: "1.2.3", Commit: "abc"})

	rr := ts.do(http.MethodGet, "/api/version", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	var v models.VersionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	assert.Equal(t, "1.2.3", v.Version)
	assert.Equal(t, "abc", v.Commit)
}

func TestInit_Metrics(t *testing.T) {
	ts := newTestServer(t, "")

	rr := ts.do(http.MethodGet, "/metrics", nil, false)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_UnknownRouteAndWrongMethod(t *testing.T) {
	ts := newTestServer(t, "")

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown route", method: http.MethodGet, target: "/api/unknown"},
		{name: "wrong method on static route", method: http.MethodDelete, target: "/api/version"},
		{name: "wrong method on login", method: http.MethodGet, target: "/api/auth/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.do(tt.method, tt.target, nil, true)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_TraceIDEchoed(t *testing.T) {
	ts := newTestServer(t, "")
	ts.appInfo.EXPECT().GetVersionInfo(gomock.Any()).Return(models.VersionResponse{}).Times(2)

	rr := ts.do(http.MethodGet, "/api/version", nil, false, traceIDHeader, "trace-1")
	assert.Equal(t, "trace-1", rr.Header().Get(traceIDHeader))

	rr = ts.do(http.MethodGet, "/api/version", nil, false)
	assert.True(t, utils.IsUUID(rr.Header().Get(traceIDHeader)))
}
