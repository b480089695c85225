// Package report renders printable PDF documents from point-in-time record
// snapshots. Generators are pure functions of their inputs plus the injected
// clock; they persist nothing and delivery is the caller's concern.
package report

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

// Options carries generation knobs shared by all report kinds.
type Options struct {
	// Now supplies the embedded generation timestamp. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

const (
	pageMargin   = 15.0
	lineHeight   = 6.0
	headerHeight = 8.0

	// image grid layout
	imageCellW = 55.0
	imageCellH = 40.0
	imageGap   = 5.0
)

func newDoc() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	return pdf
}

func docTitle(pdf *fpdf.Fpdf, title string, generated time.Time) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, "Generated "+generated.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, headerHeight, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func fieldLine(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(40, lineHeight, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, lineHeight, value, "", 1, "L", false, 0, "")
}

func tableHeader(pdf *fpdf.Fpdf, widths []float64, labels []string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, label := range labels {
		pdf.CellFormat(widths[i], lineHeight, label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func tableRow(pdf *fpdf.Fpdf, widths []float64, cells []string) {
	pdf.SetFont("Helvetica", "", 9)
	for i, cell := range cells {
		pdf.CellFormat(widths[i], lineHeight, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
