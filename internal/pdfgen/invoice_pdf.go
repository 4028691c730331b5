package pdfgen

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/hellodalat/hostel_backend/internal/core/domain"
	"github.com/hellodalat/hostel_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// InvoiceRenderer lays out a finished invoice and its booking as a PDF.
// It is pure presentation: every number it draws was computed before the
// invoice reached it.
type InvoiceRenderer struct {
	fontPath string
}

// NewInvoiceRenderer creates a renderer. fontPath may point to a UTF-8 TTF
// used for Vietnamese text; when empty or unreadable the renderer falls
// back to the built-in Helvetica font.
func NewInvoiceRenderer(fontPath string) *InvoiceRenderer {
	if fontPath != "" {
		if _, err := os.Stat(fontPath); err != nil {
			fontPath = ""
		}
	}
	return &InvoiceRenderer{fontPath: fontPath}
}

// Render produces the invoice PDF: hostel header, invoice header, customer
// and stay block, one line per booked room and used service, then totals.
func (r *InvoiceRenderer) Render(info domain.HostelInfo, booking *domain.Booking, invoice *domain.Invoice) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")

	family := "Helvetica"
	text := func(s string) string { return s }
	if r.fontPath != "" {
		family = "InvoiceSans"
		pdf.AddUTF8Font(family, "", r.fontPath)
		pdf.AddUTF8Font(family, "B", r.fontPath)
	} else {
		translate := pdf.UnicodeTranslatorFromDescriptor("")
		text = translate
	}

	pdf.AddPage()

	// Hostel header block
	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(0, 8, text(info.Name), "", 1, "C", false, 0, "")
	pdf.SetFont(family, "", 10)
	pdf.CellFormat(0, 5, text(info.Address), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, text("Tel: "+info.Phone), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Invoice header
	pdf.SetFont(family, "B", 14)
	pdf.CellFormat(0, 8, text("INVOICE "+invoice.InvoiceID), "", 1, "C", false, 0, "")
	pdf.SetFont(family, "", 10)
	pdf.CellFormat(0, 5, text("Issue date: "+invoice.IssueDate), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Customer and stay block
	nights := booking.Nights()
	pdf.SetFont(family, "", 11)
	pdf.CellFormat(0, 6, text("Guest: "+invoice.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, text("Booking: "+booking.BookingID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, text(fmt.Sprintf("Stay: %s to %s (%d night(s))",
		booking.CheckinDate, booking.CheckoutDate, nights)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Line-item table
	colW := []float64{90, 25, 35, 40}
	pdf.SetFont(family, "B", 10)
	for i, header := range []string{"Item", "Qty", "Unit price", "Amount"} {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(colW[i], 7, text(header), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 10)
	row := func(item string, qty string, unitPrice, amount decimal.Decimal) {
		pdf.CellFormat(colW[0], 7, text(item), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 7, text(qty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[2], 7, text(utils.GroupThousands(unitPrice.StringFixed(0))), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 7, text(utils.GroupThousands(amount.StringFixed(0))), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	nightsDec := decimal.NewFromInt(int64(nights))
	for _, room := range booking.RoomsBooked {
		item := fmt.Sprintf("Room %s (%s)", room.RoomID, room.RoomType)
		row(item, fmt.Sprintf("%d night(s)", nights), room.AgreedPrice, room.AgreedPrice.Mul(nightsDec))
	}
	for _, svc := range booking.ServicesUsed {
		qtyDec := decimal.NewFromInt(int64(svc.Quantity))
		row(svc.Name, fmt.Sprintf("%d %s", svc.Quantity, svc.Unit), svc.Price, svc.Price.Mul(qtyDec))
	}
	pdf.Ln(4)

	// Totals block
	totals := func(label string, amount decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont(family, style, 11)
		pdf.CellFormat(150, 7, text(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, text(utils.FormatVND(amount)), "", 1, "R", false, 0, "")
	}
	totals("Total:", invoice.TotalAmount, true)
	totals("Paid:", invoice.AmountPaid, false)
	totals("Remaining:", invoice.RemainingAmount(), true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
