package layout

import (
	"bytes"

	"github.com/jung-kurt/gofpdf/v2"
)

// cellHeight is the line height used for aligned text cells.
const cellHeight = 5.0

// PDFDocument executes the instruction stream into a single-page A4
// PDF via gofpdf.
type PDFDocument struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewPDFDocument prepares an empty portrait A4 page.
func NewPDFDocument() *PDFDocument {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginLeft, pageWidth-contentRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Core fonts are cp1252; the translator maps currency symbols and
	// accented characters from UTF-8 input.
	return &PDFDocument{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// SetFont implements Sink.
func (d *PDFDocument) SetFont(family, style string, size float64) {
	d.pdf.SetFont(family, style, size)
}

// SetTextColor implements Sink.
func (d *PDFDocument) SetTextColor(r, g, b int) {
	d.pdf.SetTextColor(r, g, b)
}

// Text implements Sink. Plain text draws with its baseline at y;
// aligned cells position their text box at y so both render on the
// same visual line for the row heights this layout uses.
func (d *PDFDocument) Text(x, y, w float64, align Align, text string) {
	if w <= 0 {
		d.pdf.Text(x, y, d.tr(text))
		return
	}
	d.pdf.SetXY(x, y-cellHeight+1)
	d.pdf.CellFormat(w, cellHeight, d.tr(text), "", 0, string(align), false, 0, "")
}

// Line implements Sink.
func (d *PDFDocument) Line(x1, y1, x2, y2 float64) {
	d.pdf.Line(x1, y1, x2, y2)
}

// Bytes closes the document and returns the encoded PDF.
func (d *PDFDocument) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
