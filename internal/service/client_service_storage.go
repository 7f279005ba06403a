package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// DefaultQuotaBytes is the storage ceiling of every account but the
// unlimited one.
const DefaultQuotaBytes int64 = 100 << 20

type clientStorageService struct {
	adapter          adapter.ServerAdapter
	sealer           crypto.Sealer
	unlimitedAccount string

	logger *logger.Logger
}

func NewClientStorageService(serverAdapter adapter.ServerAdapter, sealer crypto.Sealer, unlimitedAccount string, logger *logger.Logger) ClientStorageService {
	return &clientStorageService{
		adapter:          serverAdapter,
		sealer:           sealer,
		unlimitedAccount: strings.TrimSpace(unlimitedAccount),
		logger:           logger,
	}
}

// ComputeUsage sums the byte length of every note's opened content and the
// size of its image. Image sizes come from metadata only. A missing image
// counts as zero.
func (s *clientStorageService) ComputeUsage(ctx context.Context, session models.Session, notes []models.Note) (models.StorageUsage, error) {
	ctx, err := authorize(ctx, session)
	if err != nil {
		return models.StorageUsage{}, err
	}

	usage := models.StorageUsage{
		QuotaBytes: DefaultQuotaBytes,
		Unlimited:  s.unlimitedAccount != "" && strings.EqualFold(session.Email, s.unlimitedAccount),
	}

	for _, n := range notes {
		usage.UsedBytes += int64(len(s.sealer.Open(n.Content)))

		if !n.HasImage() {
			continue
		}
		name := attachmentName(s.sealer.Open(*n.ImageRef))
		info, err := s.adapter.AttachmentInfo(ctx, models.BucketImages, name)
		if err != nil {
			if mapped := mapAdapterError(err); errors.Is(mapped, store.ErrAttachmentNotFound) {
				continue
			}
			return models.StorageUsage{}, mapAdapterError(err)
		}
		usage.UsedBytes += info.SizeBytes
	}

	return usage, nil
}
