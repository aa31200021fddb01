package infra

// pdf.go — printable receipt rendering with go-pdf/fpdf. Produces an A7-size
// thermal-style slip: store header, receipt number and timestamp, item table,
// discount and VAT lines, bold payable total.

import (
	"bytes"
	"fmt"

	"github.com/AndreHordd/Zlagoda/internal/dto"

	"github.com/go-pdf/fpdf"
)

// ReceiptPDF renders a completed receipt as PDF bytes, ready to stream to the
// client.
func ReceiptPDF(rec *dto.ReceiptResponse) ([]byte, error) {
	// A7 ≈ 74mm × 105mm — close to thermal receipt paper (custom size, "A7" is not in fpdf's named list)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Zlagoda", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Sales receipt", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Receipt info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, "Receipt "+rec.Number, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, rec.PrintDate, "", 1, "L", false, 0, "")
	if rec.CashierName != "" {
		pdf.CellFormat(contentW, 4, "Cashier: "+rec.CashierName, "", 1, "L", false, 0, "")
	}
	if rec.CardNumber != nil {
		pdf.CellFormat(contentW, 4, "Card: "+*rec.CardNumber, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // line total

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Total", "B", 1, "R", false, 0, "")

	// ── Item rows ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	for _, item := range rec.Items {
		name := item.Name
		if name == "" {
			name = item.UPC
		}
		if len(name) > 22 {
			name = name[:19] + "..."
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, item.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, rec.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	if !rec.Discount.IsZero() {
		pdf.CellFormat(col1+col2, 4, fmt.Sprintf("Discount (%d%%):", rec.Percent), "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, "-"+rec.Discount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.CellFormat(col1+col2, 4, "VAT 20%:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, rec.VAT.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, rec.Total.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Thank you for shopping with us!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
