package services

import (
	"context"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
)

// InvoiceSvcFacade defines invoice issuance and retrieval.
type InvoiceSvcFacade interface {
	// IssueInvoice computes the booking's total bill and paid amount as of
	// now, replaces any prior invoice for the booking and records a revenue
	// transaction in the audit log. Each call mints fresh identifiers.
	IssueInvoice(ctx context.Context, booking *domain.Booking) (*domain.Invoice, error)

	// InvoiceForBooking returns the booking's current invoice together with
	// the booking itself, issuing a new invoice first when none exists yet.
	InvoiceForBooking(ctx context.Context, bookingID string) (*domain.Invoice, *domain.Booking, error)

	// HostelInfo returns the hostel metadata printed on invoice headers.
	HostelInfo(ctx context.Context) (domain.HostelInfo, error)
}
