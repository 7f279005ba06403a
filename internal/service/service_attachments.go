package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type attachmentService struct {
	storage store.AttachmentStorage

	logger *logger.Logger
}

func NewAttachmentService(storage store.AttachmentStorage, logger *logger.Logger) AttachmentService {
	return &attachmentService{
		storage: storage,
		logger:  logger,
	}
}

func (s *attachmentService) Upload(ctx context.Context, userID int64, bucket models.Bucket, name string, body io.Reader) (models.AttachmentInfo, error) {
	return s.storage.Put(ctx, userID, bucket, name, body)
}

func (s *attachmentService) Info(ctx context.Context, userID int64, bucket models.Bucket, name string) (models.AttachmentInfo, error) {
	return s.storage.Stat(ctx, userID, bucket, name)
}

func (s *attachmentService) Open(ctx context.Context, userID int64, bucket models.Bucket, name string) (io.ReadCloser, models.AttachmentInfo, error) {
	return s.storage.Open(ctx, userID, bucket, name)
}

// Delete removes the object. A missing object is reported as
// store.ErrAttachmentNotFound.
func (s *attachmentService) Delete(ctx context.Context, userID int64, bucket models.Bucket, name string) error {
	return s.storage.Delete(ctx, userID, bucket, name)
}
