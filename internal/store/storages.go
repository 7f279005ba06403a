package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups the server-side persistence backends.
type Storages struct {
	UserRepository        UserRepository
	NoteRepository        NoteRepository
	BackupRepository      BackupRepository
	PreferencesRepository PreferencesRepository
	AttachmentStorage     AttachmentStorage
	TokenStore            TokenStore

	db    *DB
	redis *redis.Client
}

// NewStorages connects PostgreSQL and Redis, applies migrations and prepares
// the attachment buckets.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	redisClient, err := NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	attachments, err := NewFileAttachmentStorage(cfg.Files.Dir, log)
	if err != nil {
		db.Close()
		redisClient.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		NoteRepository:        NewNoteRepository(db, log),
		BackupRepository:      NewBackupRepository(db, log),
		PreferencesRepository: NewPreferencesRepository(db, log),
		AttachmentStorage:     attachments,
		TokenStore:            NewRedisTokenStore(redisClient, log),
		db:                    db,
		redis:                 redisClient,
	}, nil
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
