package export

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/xuri/excelize/v2"
)

const notesSheet = "Notes"

type xlsxRenderer struct{}

// NewXLSXRenderer renders one spreadsheet row per note.
func NewXLSXRenderer() Renderer {
	return xlsxRenderer{}
}

func (xlsxRenderer) Format() models.ExportFormat {
	return models.ExportXLSX
}

func (xlsxRenderer) Render(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", notesSheet); err != nil {
		return err
	}

	header := []any{"ID", "Title", "Content", "Image", "Created", "Updated"}
	if err := f.SetSheetRow(notesSheet, "A1", &header); err != nil {
		return err
	}

	for i, n := range doc.Notes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		image := ""
		if n.HasImage() {
			image = *n.ImageRef
		}
		row := []any{
			n.ID,
			n.Title,
			PlainText(n.Content),
			image,
			n.CreatedAt.Format("2006-01-02 15:04"),
			n.UpdatedAt.Format("2006-01-02 15:04"),
		}
		if err = f.SetSheetRow(notesSheet, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(notesSheet, "B", "B", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(notesSheet, "C", "C", 80); err != nil {
		return err
	}

	return f.Write(w)
}
