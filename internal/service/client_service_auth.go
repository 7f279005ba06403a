package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, creds models.CredentialsRequest) (models.User, error) {
	user, err := a.adapter.Register(ctx, creds)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (a *clientAuthService) Login(ctx context.Context, creds models.CredentialsRequest) (models.Session, error) {
	user, token, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{
		UserID:    user.UserID,
		Email:     user.Email,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}

	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}
	a.adapter.SetToken(token)

	return session, nil
}

// Logout forgets the session locally before telling the server, so a server
// failure never leaves the device signed in.
func (a *clientAuthService) Logout(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.adapter.SetToken("")

	if !session.Valid() {
		return nil
	}

	if err := a.adapter.Logout(adapter.WithToken(ctx, session.Token)); err != nil {
		mapped := mapAdapterError(err)
		// the token is already unusable
		if isAuthFailure(mapped) {
			return nil
		}
		log.Warn().Err(err).Str("func", "*clientAuthService.Logout").Msg("server logout failed")
		return mapped
	}

	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.LoadSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if _, err = a.adapter.CurrentUser(adapter.WithToken(ctx, session.Token)); err != nil {
		mapped := mapAdapterError(err)
		if isAuthFailure(mapped) {
			if clearErr := a.sessions.ClearSession(ctx); clearErr != nil {
				logger.FromContext(ctx).Warn().Err(clearErr).Str("func", "*clientAuthService.RestoreSession").
					Msg("failed to clear rejected local session")
			}
			return models.Session{}, store.ErrLocalSessionNotFound
		}
		return models.Session{}, mapped
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func isAuthFailure(err error) bool {
	return errors.Is(err, ErrTokenIsExpired) ||
		errors.Is(err, ErrTokenIsExpiredOrInvalid) ||
		errors.Is(err, ErrTokenRevoked)
}
