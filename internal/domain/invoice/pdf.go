package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF renders the downloadable invoice document. It consumes the same
// aggregation output as the HTML page, so both surfaces show identical rows
// and totals.
func RenderPDF(inv Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, inv.User.Name)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Contact number: %s", inv.User.ContactNumber))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Email: %s", inv.User.Email))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Bill to: %s", inv.User.ManagerName))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice for %s", inv.Label))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", inv.IssuedOn))
	pdf.Ln(10)

	widths := []float64{24, 56, 28, 24, 18, 24}
	headers := []string{"Status", "Class Description", "Day", "Date", "Hours", "Wage"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range inv.Rows {
		pdf.CellFormat(widths[0], 7, row.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%s - %s", row.Class, row.Grade), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, row.Day, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, row.DateLabel, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 7, fmt.Sprintf("%d", row.Hours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, fmt.Sprintf("%.2f", row.Wage), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 7, "TOTAL", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, fmt.Sprintf("%d", inv.TotalHours), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 7, fmt.Sprintf("%.2f", inv.TotalPay), "1", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Bank Details:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, inv.User.Name)
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("BSB: %s", inv.User.BSB))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Account No: %s", inv.User.AccountNumber))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
