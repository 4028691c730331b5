package repositories

import (
	"context"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data.
type InvoiceReader interface {
	// FindInvoiceByBookingID retrieves the current invoice for a booking.
	// Returns apperrors.ErrNotFound when no invoice has been issued.
	FindInvoiceByBookingID(ctx context.Context, bookingID string) (*domain.Invoice, error)

	// ListInvoices returns all stored invoices in issue order.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data.
type InvoiceWriter interface {
	// ReplaceInvoiceForBooking drops every prior invoice for the booking,
	// appends the new invoice and appends its revenue transaction to the
	// audit log, all within a single persisted write.
	ReplaceInvoiceForBooking(ctx context.Context, invoice domain.Invoice, txn domain.Transaction) error
}

// TransactionReader defines read operations over the append-only audit log.
type TransactionReader interface {
	// ListTransactions returns all audit-log entries in append order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
	TransactionReader
}
