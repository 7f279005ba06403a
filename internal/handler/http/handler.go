package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// Request body limits.
const (
	maxJSONBodyBytes       = 16 << 20
	maxAttachmentBodyBytes = 32 << 20
)

type Handler struct {
	services *service.Services

	// hashKey enables X-Body-Hash verification of bulk writes when set.
	hashKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	if cfg.HashKey != "" {
		utils.InitHasherPool(cfg.HashKey)
	}

	logger.Info().Bool("body_hashing", cfg.HashKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  cfg.HashKey,
		logger:   logger,
	}
}

// decodeJSON reads a size-limited JSON body into dst. Malformed bodies are
// reported as [service.ErrInvalidDataProvided].
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)).Decode(dst)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}
