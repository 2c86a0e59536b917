package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// pdfText converts UTF-8 text to PDF-safe encoding. The £ sign in UTF-8 is
// 0xC2 0xA3, but the standard PDF fonts expect Latin-1 (just 0xA3).
func pdfText(s string) string {
	return strings.ReplaceAll(s, "£", "\xa3")
}

// PDFFormatter renders the report as an A4 PDF suitable for record-keeping.
type PDFFormatter struct{}

func (PDFFormatter) Name() string { return "pdf" }

func (PDFFormatter) Format(data *ReportData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth, 12, "Expense Compliance Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(contentWidth, 8, fmt.Sprintf("Tax year %s | %s to %s | generated %s",
		data.TaxYear.String(),
		data.Report.From.Format("2 Jan 2006"),
		data.Report.To.Format("2 Jan 2006"),
		data.GeneratedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Category table
	pdfSectionHeader(pdf, "By Category")
	pdfTableRow(pdf, true, "Category", "Count", "Total", "Share")
	for _, c := range data.Report.ByCategory {
		pdfTableRow(pdf, false, string(c.Category), fmt.Sprintf("%d", c.Count),
			pdfText(FormatCurrency(c.Total)), c.Percentage.StringFixed(2)+"%")
	}
	pdf.Ln(6)

	// Month table
	pdfSectionHeader(pdf, "By Month")
	pdfTableRow(pdf, true, "Month", "Count", "Total", "VAT")
	for _, m := range data.Report.ByMonth {
		pdfTableRow(pdf, false, m.Month, fmt.Sprintf("%d", m.Count),
			pdfText(FormatCurrency(m.Total)), pdfText(FormatCurrency(m.VAT)))
	}
	pdf.Ln(6)

	// Totals
	pdfSectionHeader(pdf, "Totals")
	t := data.Report.Totals
	pdfKeyValue(pdf, "Receipts", pdfText(FormatCurrency(t.ReceiptTotal)))
	pdfKeyValue(pdf, "Mileage", pdfText(FormatCurrency(t.MileageTotal)))
	pdfKeyValue(pdf, "Grand total", pdfText(FormatCurrency(t.GrandTotal)))
	pdf.Ln(6)

	if e := data.Estimate; e != nil {
		pdfSectionHeader(pdf, "Tax Estimate")
		pdfKeyValue(pdf, "Taxable profit", pdfText(FormatCurrency(e.TaxableProfit)))
		pdfKeyValue(pdf, "Income Tax", pdfText(FormatCurrency(e.IncomeTax)))
		pdfKeyValue(pdf, "Class 2 NI", pdfText(FormatCurrency(e.Class2NI)))
		pdfKeyValue(pdf, "Class 4 NI", pdfText(FormatCurrency(e.Class4NI)))
		pdfKeyValue(pdf, "Total tax", pdfText(FormatCurrency(e.TotalTax)))
		pdfKeyValue(pdf, "Effective rate", e.EffectiveRate.StringFixed(2)+"%")
		pdfKeyValue(pdf, "Monthly savings target", pdfText(FormatCurrency(e.MonthlySavingsTarget)))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfSectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth, 9, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(50, 50, 50)
}

func pdfTableRow(pdf *fpdf.Fpdf, header bool, cols ...string) {
	if header {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(245, 247, 250)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(255, 255, 255)
	}
	widths := []float64{80, 25, 40, 35}
	for i, col := range cols {
		w := contentWidth / float64(len(cols))
		if i < len(widths) && len(cols) == len(widths) {
			w = widths[i]
		}
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(w, 7, col, "1", 0, align, header, 0, "")
	}
	pdf.Ln(-1)
}

func pdfKeyValue(pdf *fpdf.Fpdf, key, value string) {
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(70, 7, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(60, 7, value, "", 1, "R", false, 0, "")
}
