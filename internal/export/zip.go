package export

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes-keeper/models"
	"golang.org/x/net/html"
)

const (
	zipNotesFile    = "notes.json"
	zipManifestFile = "manifest.json"
)

type zipRenderer struct{}

// NewZIPRenderer bundles notes.json, one HTML file per note and a
// manifest.json.
func NewZIPRenderer() Renderer {
	return zipRenderer{}
}

func (zipRenderer) Format() models.ExportFormat {
	return models.ExportZIP
}

func (zipRenderer) Render(w io.Writer, doc Document) error {
	zw := zip.NewWriter(w)

	files := []string{zipNotesFile}
	if err := writeJSONEntry(zw, zipNotesFile, doc.Notes); err != nil {
		return err
	}

	for i, n := range doc.Notes {
		name := fmt.Sprintf("notes/%03d.html", i+1)
		if n.ID != "" {
			name = fmt.Sprintf("notes/%s.html", n.ID)
		}
		entry, err := zw.Create(name)
		if err != nil {
			return err
		}
		if _, err = io.WriteString(entry, noteHTML(n)); err != nil {
			return err
		}
		files = append(files, name)
	}

	manifest := models.ExportManifest{
		App:        "go-notes-keeper",
		Version:    doc.AppVersion,
		ExportedAt: doc.ExportedAt,
		NoteCount:  len(doc.Notes),
		Files:      files,
	}
	if err := writeJSONEntry(zw, zipManifestFile, manifest); err != nil {
		return err
	}

	return zw.Close()
}

func writeJSONEntry(zw *zip.Writer, name string, v any) error {
	entry, err := zw.Create(name)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(entry)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// noteHTML wraps the note content, which already is HTML, into a page.
func noteHTML(n models.Note) string {
	title := html.EscapeString(n.Title)
	return "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>" + title +
		"</title></head><body><h1>" + title + "</h1>\n" + n.Content + "\n</body></html>\n"
}
