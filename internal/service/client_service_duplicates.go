package service

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type clientDuplicateService struct {
	notes  ClientNoteService
	sealer crypto.Sealer

	logger *logger.Logger
}

func NewClientDuplicateService(notes ClientNoteService, sealer crypto.Sealer, logger *logger.Logger) ClientDuplicateService {
	return &clientDuplicateService{notes: notes, sealer: sealer, logger: logger}
}

// FindAndCollapse groups notes by their opened content. The title is not part
// of the key and content is compared byte for byte, markup included. notes
// may be sealed or already opened.
func (s *clientDuplicateService) FindAndCollapse(ctx context.Context, session models.Session, notes []models.Note) (models.DuplicateReport, error) {
	if !session.Valid() {
		return models.DuplicateReport{}, ErrNotAuthenticated
	}
	log := logger.FromContext(ctx)

	var order []string
	groups := make(map[string][]models.Note)
	for _, n := range notes {
		key := s.sealer.Open(n.Content)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], n)
	}

	var report models.DuplicateReport
	for _, key := range order {
		group := groups[key]
		if len(group) < 2 {
			continue
		}
		report.Groups++

		sort.SliceStable(group, func(i, j int) bool {
			return group[i].UpdatedAt.After(group[j].UpdatedAt)
		})
		report.Kept = append(report.Kept, group[0].ID)

		for _, dup := range group[1:] {
			if _, err := s.notes.Delete(ctx, session, dup.ID); err != nil {
				log.Err(err).
					Str("func", "*clientDuplicateService.FindAndCollapse").
					Str("note_id", dup.ID).
					Msg("duplicate was not deleted")
				report.Failed = append(report.Failed, dup.ID)
				continue
			}
			report.Deleted++
		}
	}

	log.Info().Int("groups", report.Groups).Int("deleted", report.Deleted).Int("failed", len(report.Failed)).Msg("duplicates collapsed")
	return report, nil
}
