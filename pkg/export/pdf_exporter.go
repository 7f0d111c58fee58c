package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders a weekly calendar grid into a single-page PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render draws the dataset as a calendar table: the first header column is a
// narrow time gutter, the remaining columns share the rest of the page
// evenly. Landscape A4 fits five weekday columns comfortably.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) < 2 {
		return nil, fmt.Errorf("pdf calendar requires a time column and at least one day column")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 9, title, "", 1, "C", false, 0, "")
		pdf.Ln(3)
	}

	const gutterWidth = 24.0
	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 20
	dayWidth := (usable - gutterWidth) / float64(len(data.Headers)-1)

	widthFor := func(i int) float64 {
		if i == 0 {
			return gutterWidth
		}
		return dayWidth
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(235, 238, 244)
	for i, header := range data.Headers {
		pdf.CellFormat(widthFor(i), 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range data.Rows {
		for i, header := range data.Headers {
			align := "C"
			if i > 0 {
				align = "L"
			}
			pdf.CellFormat(widthFor(i), 5.5, row[header], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
