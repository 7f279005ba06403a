package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCreds = models.CredentialsRequest{Email: "user@example.com", Password: "secret-password"}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "created",
			body:       testCreds,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "email taken",
			body:       testCreds,
			serviceErr: fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus: http.StatusConflict,
			wantError:  app.MsgEmailAlreadyExists,
		},
		{
			name:       "invalid email",
			body:       testCreds,
			serviceErr: service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDataProvided,
		},
		{
			name:       "malformed json",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, "")
			if _, raw := tt.body.(string); !raw {
				ts.auth.EXPECT().RegisterUser(gomock.Any(), testCreds).
					Return(models.User{UserID: 1, Email: testCreds.Email, PasswordHash: "hash"}, tt.serviceErr)
			}

			rr := ts.do(http.MethodPost, "/api/auth/register", tt.body, false)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorBody(t, rr))
				return
			}
			assert.NotContains(t, rr.Body.String(), "hash")
		})
	}
}

func TestLogin_SetsAuthorizationHeader(t *testing.T) {
	ts := newTestServer(t, "")
	user := models.User{UserID: testUserID, Email: testCreds.Email}

	gomock.InOrder(
		ts.auth.EXPECT().Login(gomock.Any(), testCreds).Return(user, nil),
		ts.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed"}, nil),
	)

	rr := ts.do(http.MethodPost, "/api/auth/login", testCreds, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed", rr.Header().Get("Authorization"))
	assert.Contains(t, rr.Body.String(), testCreds.Email)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"unknown email", fmt.Errorf("user search by email failed: %w", store.ErrNoUserWasFound), http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"not verified", service.ErrEmailNotVerified, http.StatusForbidden, app.MsgEmailNotVerified},
		{"database down", fmt.Errorf("find: %w", store.ErrTransient), http.StatusServiceUnavailable, app.MsgServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, "")
			ts.auth.EXPECT().Login(gomock.Any(), testCreds).Return(models.User{}, tt.err)

			rr := ts.do(http.MethodPost, "/api/auth/login", testCreds, false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, errorBody(t, rr))
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}

func TestLogout_RevokesRequestToken(t *testing.T) {
	ts := newTestServer(t, "")
	ts.auth.EXPECT().Logout(gomock.Any(), models.Token{UserID: testUserID}).Return(nil)

	rr := ts.do(http.MethodPost, "/api/auth/logout", nil, true)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestSession(t *testing.T) {
	ts := newTestServer(t, "")
	ts.auth.EXPECT().CurrentUser(gomock.Any(), testUserID).
		Return(models.User{UserID: testUserID, Email: testCreds.Email, PasswordHash: "hash"}, nil)

	rr := ts.do(http.MethodGet, "/api/auth/session", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), testCreds.Email)
	assert.NotContains(t, rr.Body.String(), "hash")
}

func TestPasswordFlows(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		ts := newTestServer(t, "")
		req := models.PasswordUpdateRequest{OldPassword: "old-password", NewPassword: "new-password"}
		ts.auth.EXPECT().UpdatePassword(gomock.Any(), testUserID, req).Return(service.ErrWrongPassword)

		rr := ts.do(http.MethodPost, "/api/auth/password", req, true)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("reset request is accepted", func(t *testing.T) {
		ts := newTestServer(t, "")
		req := models.PasswordResetRequest{Email: "nobody@example.com"}
		ts.auth.EXPECT().RequestPasswordReset(gomock.Any(), req).Return(nil)

		rr := ts.do(http.MethodPost, "/api/auth/password/reset", req, false)

		assert.Equal(t, http.StatusAccepted, rr.Code)
	})

	t.Run("reset confirm with used token", func(t *testing.T) {
		ts := newTestServer(t, "")
		req := models.PasswordResetConfirmRequest{Token: "t", NewPassword: "new-password"}
		ts.auth.EXPECT().ConfirmPasswordReset(gomock.Any(), req).Return(service.ErrInvalidOneTimeToken)

		rr := ts.do(http.MethodPost, "/api/auth/password/reset/confirm", req, false)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgInvalidOneTimeToken, errorBody(t, rr))
	})

	t.Run("verify email", func(t *testing.T) {
		ts := newTestServer(t, "")
		req := models.VerifyEmailRequest{Token: "t"}
		ts.auth.EXPECT().VerifyEmail(gomock.Any(), req).Return(nil)

		rr := ts.do(http.MethodPost, "/api/auth/verify", req, false)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		parseErr  error
		wantError string
	}{
		{name: "no header", wantError: app.MsgTokenIsExpiredOrInvalid},
		{name: "not a bearer header", header: "Basic abc", wantError: app.MsgTokenIsExpiredOrInvalid},
		{name: "expired", header: "Bearer old", parseErr: service.ErrTokenIsExpired, wantError: app.MsgTokenIsExpired},
		{name: "revoked", header: "Bearer old", parseErr: service.ErrTokenRevoked, wantError: app.MsgTokenRevoked},
		{name: "garbage", header: "Bearer old", parseErr: service.ErrTokenIsExpiredOrInvalid, wantError: app.MsgTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, "")
			if tt.parseErr != nil {
				ts.auth.EXPECT().ParseToken(gomock.Any(), "old").Return(models.Token{}, tt.parseErr)
			}

			headers := []string{}
			if tt.header != "" {
				headers = append(headers, "Authorization", tt.header)
			}
			rr := ts.do(http.MethodGet, "/api/notes", nil, false, headers...)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantError, errorBody(t, rr))
		})
	}
}

func TestAuthMiddleware_StoresTokenInContext(t *testing.T) {
	ts := newTestServer(t, "")
	h := &Handler{services: &service.Services{AuthService: ts.auth}}

	var (
		gotID    int64
		gotToken models.Token
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		gotToken, _ = utils.GetTokenFromContext(r.Context())
	})

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testToken)
	h.auth(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, testUserID, gotID)
	assert.Equal(t, testUserID, gotToken.UserID)
}
