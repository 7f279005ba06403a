package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type clientExportService struct {
	notes    ClientNoteService
	exporter NoteExporter

	logger *logger.Logger
}

func NewClientExportService(notes ClientNoteService, exporter NoteExporter, logger *logger.Logger) ClientExportService {
	return &clientExportService{notes: notes, exporter: exporter, logger: logger}
}

func (s *clientExportService) Export(ctx context.Context, session models.Session, format models.ExportFormat) (models.ExportRecord, error) {
	if !format.Valid() {
		return models.ExportRecord{}, fmt.Errorf("%w: %s", ErrUnsupportedExportFormat, format)
	}

	notes, err := s.notes.List(ctx, session)
	if err != nil {
		return models.ExportRecord{}, err
	}
	if len(notes) == 0 {
		return models.ExportRecord{}, ErrNoNotes
	}

	return s.exporter.Export(ctx, session.UserID, format, notes)
}

func (s *clientExportService) History(ctx context.Context, session models.Session) ([]models.ExportRecord, error) {
	if !session.Valid() {
		return nil, ErrNotAuthenticated
	}
	return s.exporter.History(ctx, session.UserID)
}
