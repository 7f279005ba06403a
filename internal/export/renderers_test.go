package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testDocument() Document {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	image := "https://files.example.com/images/1/cat.png"
	return Document{
		Notes: []models.Note{
			{ID: "n1", Title: "Groceries", Content: "<p>milk</p><p>bread</p>", CreatedAt: at, UpdatedAt: at},
			{ID: "n2", Title: "Café", Content: "plain", ImageRef: &image, CreatedAt: at, UpdatedAt: at.Add(time.Hour)},
		},
		ExportedAt: at,
		AppVersion: "v1.2.3",
	}
}

func TestXLSXRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSXRenderer().Render(&buf, testDocument()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(notesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Title", rows[0][1])
	assert.Equal(t, "Groceries", rows[1][1])
	assert.Equal(t, "milk\nbread", rows[1][2])
	assert.Equal(t, "https://files.example.com/images/1/cat.png", rows[2][3])
}

func TestPDFRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPDFRenderer().Render(&buf, testDocument()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestZIPRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewZIPRenderer().Render(&buf, testDocument()))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	entries := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		entries[f.Name] = string(b)
	}

	require.Contains(t, entries, "notes.json")
	require.Contains(t, entries, "manifest.json")
	require.Contains(t, entries, "notes/n1.html")
	require.Contains(t, entries, "notes/n2.html")
	assert.Contains(t, entries["notes/n1.html"], "<p>milk</p><p>bread</p>")

	var notes []models.Note
	require.NoError(t, json.Unmarshal([]byte(entries["notes.json"]), &notes))
	assert.Len(t, notes, 2)

	var manifest models.ExportManifest
	require.NoError(t, json.Unmarshal([]byte(entries["manifest.json"]), &manifest))
	assert.Equal(t, 2, manifest.NoteCount)
	assert.Equal(t, "v1.2.3", manifest.Version)
	assert.ElementsMatch(t, []string{"notes.json", "notes/n1.html", "notes/n2.html"}, manifest.Files)
}

func TestNoteHTML_EscapesTitle(t *testing.T) {
	got := noteHTML(models.Note{Title: "<b>x</b>", Content: "<p>y</p>"})

	assert.Contains(t, got, "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, got, "<p>y</p>")
}
