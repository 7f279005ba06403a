package export

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-pdf/fpdf"
)

type pdfRenderer struct{}

// NewPDFRenderer renders the notes one after another on A4 pages.
func NewPDFRenderer() Renderer {
	return pdfRenderer{}
}

func (pdfRenderer) Format() models.ExportFormat {
	return models.ExportPDF
}

func (pdfRenderer) Render(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle("Notes", true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Notes", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Exported %s, %d notes", doc.ExportedAt.Format("2006-01-02 15:04"), len(doc.Notes))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, n := range doc.Notes {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, tr(n.Title), "", "L", false)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 5, n.UpdatedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(PlainText(n.Content)), "", "L", false)
		pdf.Ln(4)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
