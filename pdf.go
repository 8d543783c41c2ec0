package main

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfMargin     = 10  // margin in mm
	pdfLineHeight = 6   // line height in mm
	pdfFontSize   = 10
)

// generatePDF renders the aggregate report as an A4 PDF: a header naming
// the scanned directory, one row per extension, an optional per-language
// section, and the grand total.
func generatePDF(report *Report, directory string, rollup []LanguageCount, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	usableWidth := float64(pdfPageWidth - 2*pdfMargin)

	pdf.SetFont("Helvetica", "B", pdfFontSize+2)
	pdf.MultiCell(usableWidth, pdfLineHeight, fmt.Sprintf("Line counts for %s", directory), "", "L", false)
	pdf.Ln(pdfLineHeight / 2)

	pdf.SetFont("Courier", "", pdfFontSize)
	for _, ec := range report.Extensions() {
		pdf.CellFormat(usableWidth*2/3, pdfLineHeight, ec.Extension, "", 0, "L", false, 0, "")
		pdf.CellFormat(usableWidth/3, pdfLineHeight, fmt.Sprintf("%d", ec.Lines), "", 1, "R", false, 0, "")
	}

	if len(rollup) > 0 {
		pdf.Ln(pdfLineHeight / 2)
		pdf.SetFont("Helvetica", "B", pdfFontSize)
		pdf.MultiCell(usableWidth, pdfLineHeight, "By language", "", "L", false)
		pdf.SetFont("Courier", "", pdfFontSize)
		for _, lc := range rollup {
			pdf.CellFormat(usableWidth*2/3, pdfLineHeight, lc.Language, "", 0, "L", false, 0, "")
			pdf.CellFormat(usableWidth/3, pdfLineHeight, fmt.Sprintf("%d", lc.Lines), "", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(pdfLineHeight / 2)
	pdf.Line(pdfMargin, pdf.GetY(), pdfPageWidth-pdfMargin, pdf.GetY())
	pdf.Ln(pdfLineHeight / 2)

	pdf.SetFont("Helvetica", "B", pdfFontSize)
	pdf.CellFormat(usableWidth*2/3, pdfLineHeight, "Total lines", "", 0, "L", false, 0, "")
	pdf.CellFormat(usableWidth/3, pdfLineHeight, fmt.Sprintf("%d", report.TotalLines), "", 1, "R", false, 0, "")

	if len(report.Errors) > 0 {
		pdf.Ln(pdfLineHeight / 2)
		pdf.SetFont("Helvetica", "", pdfFontSize-1)
		pdf.MultiCell(usableWidth, pdfLineHeight, fmt.Sprintf("%d file(s) could not be read and contributed no lines.", len(report.Errors)), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF to %s: %w", outputPath, err)
	}
	return nil
}
