package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type preferencesService struct {
	preferencesRepository store.PreferencesRepository

	logger *logger.Logger
}

func NewPreferencesService(preferencesRepository store.PreferencesRepository, logger *logger.Logger) PreferencesService {
	return &preferencesService{
		preferencesRepository: preferencesRepository,
		logger:                logger,
	}
}

func (s *preferencesService) GetPreferences(ctx context.Context, userID int64) (models.UserPreferences, error) {
	return s.preferencesRepository.GetOrCreatePreferences(ctx, userID)
}

func (s *preferencesService) UpdatePreferences(ctx context.Context, userID int64, update models.PreferencesUpdate) (models.UserPreferences, error) {
	return s.preferencesRepository.UpdatePreferences(ctx, userID, update)
}
