package service

import (
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type Services struct {
	AuthService        AuthService
	NoteService        NoteService
	BackupService      BackupService
	PreferencesService PreferencesService
	AttachmentService  AttachmentService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, storages.TokenStore, NewLogMailer(logger), cfg.App, logger),
		NoteService:        NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger)),
		BackupService:      NewBackupService(storages.BackupRepository, logger),
		PreferencesService: NewPreferencesService(storages.PreferencesRepository, logger),
		AttachmentService:  NewAttachmentService(storages.AttachmentStorage, logger),
		AppInfoService:     appInfoService,
	}, nil
}
