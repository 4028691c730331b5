package domain

import "github.com/shopspring/decimal"

// Invoice is a billing snapshot for a booking, taken at issue time. At most
// one invoice exists per booking: issuing a new one replaces older invoices
// for the same booking id.
type Invoice struct {
	InvoiceID    string          `json:"invoiceId"`
	BookingID    string          `json:"bookingId"`
	IssueDate    string          `json:"issueDate"`
	CustomerName string          `json:"customerName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
}

// RemainingAmount is the unpaid balance captured by this invoice snapshot.
func (i *Invoice) RemainingAmount() decimal.Decimal {
	return i.TotalAmount.Sub(i.AmountPaid)
}
