package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// localSessionRepository keeps at most one signed-in session in SQLite.
type localSessionRepository struct {
	db     *LocalDB
	logger *logger.Logger
}

// NewLocalSessionRepository constructs a [LocalSessionRepository].
func NewLocalSessionRepository(db *LocalDB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{db: db, logger: logger}
}

// SaveSession replaces the stored session.
func (r *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.db.ExecContext(ctx, saveLocalSession, session.UserID, session.Email, session.Token, session.CreatedAt)
	if err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("failed to save local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// LoadSession returns the stored session or [ErrLocalSessionNotFound].
func (r *localSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var s models.Session
	err := r.db.QueryRowContext(ctx, loadLocalSession).Scan(&s.UserID, &s.Email, &s.Token, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.LoadSession").Msg("failed to load local session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return s, nil
}

// ClearSession removes any stored session. It is safe to call repeatedly.
func (r *localSessionRepository) ClearSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearLocalSession); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.ClearSession").Msg("failed to clear local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
