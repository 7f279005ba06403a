package models

import "time"

// ExportFormat selects the rendering of an offline export.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportPDF  ExportFormat = "pdf"
	ExportZIP  ExportFormat = "zip"
)

// Valid reports whether f is a supported export format.
func (f ExportFormat) Valid() bool {
	switch f {
	case ExportXLSX, ExportPDF, ExportZIP:
		return true
	}
	return false
}

// Extension returns the file extension (with dot) for the format.
func (f ExportFormat) Extension() string {
	return "." + string(f)
}

// ExportRecord is an entry of the local export history.
type ExportRecord struct {
	ID        string       `json:"id"`
	UserID    int64        `json:"user_id"`
	Format    ExportFormat `json:"format"`
	FilePath  string       `json:"file_path"`
	Checksum  string       `json:"checksum"`
	SizeBytes int64        `json:"size_bytes"`
	ItemCount int          `json:"item_count"`
	CreatedAt time.Time    `json:"created_at"`
}

// ExportManifest is written into zip bundles next to the notes.
type ExportManifest struct {
	App        string    `json:"app"`
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	NoteCount  int       `json:"note_count"`
	Files      []string  `json:"files"`
}
