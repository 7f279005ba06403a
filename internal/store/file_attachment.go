package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// fileAttachmentStorage keeps attachment objects on the local filesystem
// under <root>/<bucket>/<user_id>/<name>.
type fileAttachmentStorage struct {
	root   string
	logger *logger.Logger
}

// NewFileAttachmentStorage creates the bucket directories under root.
func NewFileAttachmentStorage(root string, logger *logger.Logger) (AttachmentStorage, error) {
	for _, b := range []models.Bucket{models.BucketImages, models.BucketVoice} {
		if err := os.MkdirAll(filepath.Join(root, string(b)), 0o750); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", b, err)
		}
	}

	return &fileAttachmentStorage{
		root:   root,
		logger: logger,
	}, nil
}

// Put writes body atomically, replacing any object with the same name.
func (s *fileAttachmentStorage) Put(ctx context.Context, userID int64, bucket models.Bucket, name string, body io.Reader) (models.AttachmentInfo, error) {
	log := logger.FromContext(ctx)

	path, err := s.objectPath(userID, bucket, name)
	if err != nil {
		return models.AttachmentInfo{}, err
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o750); err != nil {
		return models.AttachmentInfo{}, fmt.Errorf("create owner dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return models.AttachmentInfo{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, contextReader{ctx: ctx, r: body}); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "*fileAttachmentStorage.Put").Str("name", name).Msg("failed to write attachment")
		return models.AttachmentInfo{}, fmt.Errorf("write attachment: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return models.AttachmentInfo{}, fmt.Errorf("close attachment: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return models.AttachmentInfo{}, fmt.Errorf("store attachment: %w", err)
	}

	return s.Stat(ctx, userID, bucket, name)
}

// Stat returns the object metadata without reading it.
func (s *fileAttachmentStorage) Stat(_ context.Context, userID int64, bucket models.Bucket, name string) (models.AttachmentInfo, error) {
	path, err := s.objectPath(userID, bucket, name)
	if err != nil {
		return models.AttachmentInfo{}, err
	}

	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.AttachmentInfo{}, ErrAttachmentNotFound
	}
	if err != nil {
		return models.AttachmentInfo{}, fmt.Errorf("stat attachment: %w", err)
	}

	return models.AttachmentInfo{
		Bucket:    bucket,
		Name:      name,
		SizeBytes: fi.Size(),
		UpdatedAt: fi.ModTime().UTC(),
	}, nil
}

// Open returns a reader of the object. The caller closes it.
func (s *fileAttachmentStorage) Open(ctx context.Context, userID int64, bucket models.Bucket, name string) (io.ReadCloser, models.AttachmentInfo, error) {
	info, err := s.Stat(ctx, userID, bucket, name)
	if err != nil {
		return nil, models.AttachmentInfo{}, err
	}

	path, _ := s.objectPath(userID, bucket, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, models.AttachmentInfo{}, fmt.Errorf("open attachment: %w", err)
	}

	return f, info, nil
}

// Delete removes the object. Deleting a missing object reports
// [ErrAttachmentNotFound].
func (s *fileAttachmentStorage) Delete(ctx context.Context, userID int64, bucket models.Bucket, name string) error {
	path, err := s.objectPath(userID, bucket, name)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrAttachmentNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileAttachmentStorage.Delete").Str("name", name).Msg("failed to delete attachment")
		return fmt.Errorf("delete attachment: %w", err)
	}

	return nil
}

func (s *fileAttachmentStorage) objectPath(userID int64, bucket models.Bucket, name string) (string, error) {
	if !bucket.Valid() {
		return "", ErrInvalidBucket
	}
	if err := ValidateAttachmentName(name); err != nil {
		return "", err
	}

	return filepath.Join(s.root, string(bucket), strconv.FormatInt(userID, 10), name), nil
}

// ValidateAttachmentName rejects names that are empty, hidden, or contain
// path separators.
func ValidateAttachmentName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return ErrInvalidAttachmentName
	case strings.HasPrefix(name, "."):
		return ErrInvalidAttachmentName
	case strings.ContainsAny(name, `/\`), strings.ContainsRune(name, 0):
		return ErrInvalidAttachmentName
	case len(name) > 255:
		return ErrInvalidAttachmentName
	}
	return nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
