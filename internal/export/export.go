// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export renders opened notes into offline files and records every
// produced file in the local export history.
package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/benbjohnson/clock"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Document is what a Renderer turns into a file.
type Document struct {
	Notes      []models.Note
	ExportedAt time.Time
	AppVersion string
}

// Renderer writes a Document in one file format.
type Renderer interface {
	Format() models.ExportFormat
	Render(w io.Writer, doc Document) error
}

// Exporter writes export files into a directory.
type Exporter struct {
	dir        string
	appVersion string
	renderers  map[models.ExportFormat]Renderer
	history    store.ExportHistoryRepository
	clock      clock.Clock
	ids        *utils.UUIDGenerator

	logger *logger.Logger
}

// NewExporter returns an Exporter with the XLSX, PDF and ZIP renderers.
func NewExporter(dir, appVersion string, history store.ExportHistoryRepository, clk clock.Clock, log *logger.Logger) *Exporter {
	if clk == nil {
		clk = clock.New()
	}
	if dir == "" {
		dir = "."
	}

	e := &Exporter{
		dir:        dir,
		appVersion: appVersion,
		renderers:  make(map[models.ExportFormat]Renderer),
		history:    history,
		clock:      clk,
		ids:        utils.NewUUIDGenerator(),
		logger:     log,
	}
	for _, r := range []Renderer{NewXLSXRenderer(), NewPDFRenderer(), NewZIPRenderer()} {
		e.renderers[r.Format()] = r
	}
	return e
}

// Export renders notes as format and records the file. A failed render
// leaves no file behind.
func (e *Exporter) Export(ctx context.Context, userID int64, format models.ExportFormat, notes []models.Note) (models.ExportRecord, error) {
	r, ok := e.renderers[format]
	if !ok {
		return models.ExportRecord{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return models.ExportRecord{}, fmt.Errorf("create export dir: %w", err)
	}

	now := e.clock.Now().UTC()
	path := filepath.Join(e.dir, fmt.Sprintf("notes-%s%s", now.Format("20060102-150405"), format.Extension()))

	f, err := os.Create(path)
	if err != nil {
		return models.ExportRecord{}, fmt.Errorf("create export file: %w", err)
	}

	h := sha256.New()
	cw := &countingWriter{}
	renderErr := r.Render(io.MultiWriter(f, h, cw), Document{Notes: notes, ExportedAt: now, AppVersion: e.appVersion})
	closeErr := f.Close()
	if err = errors.Join(renderErr, closeErr); err != nil {
		_ = os.Remove(path)
		log.Err(err).Str("func", "*Exporter.Export").Str("format", string(format)).Msg("export failed")
		return models.ExportRecord{}, fmt.Errorf("render %s: %w", format, err)
	}

	record := models.ExportRecord{
		ID:        e.ids.Generate(),
		UserID:    userID,
		Format:    format,
		FilePath:  path,
		Checksum:  hex.EncodeToString(h.Sum(nil)),
		SizeBytes: cw.n,
		ItemCount: len(notes),
		CreatedAt: now,
	}

	if err = e.history.SaveExport(ctx, record); err != nil {
		return models.ExportRecord{}, fmt.Errorf("record export: %w", err)
	}

	log.Info().Str("format", string(format)).Str("path", path).Int("notes", len(notes)).Msg("notes exported")
	return record, nil
}

// History returns the exports of userID, newest first.
func (e *Exporter) History(ctx context.Context, userID int64) ([]models.ExportRecord, error) {
	return e.history.ListExports(ctx, userID)
}

type countingWriter struct {
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}
