package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hellodalat/hostel_backend/internal/apperrors"
	"github.com/hellodalat/hostel_backend/internal/core/domain"
	portsrepo "github.com/hellodalat/hostel_backend/internal/core/ports/repositories"
	portssvc "github.com/hellodalat/hostel_backend/internal/core/ports/services"
	"github.com/hellodalat/hostel_backend/internal/middleware"
)

// invoiceService implements portssvc.InvoiceSvcFacade.
type invoiceService struct {
	invoices portsrepo.InvoiceRepositoryFacade
	bookings portsrepo.BookingReader
	catalog  portsrepo.CatalogReader
	minter   portsrepo.IdentifierMinter
}

// NewInvoiceService creates the invoice service.
func NewInvoiceService(
	invoices portsrepo.InvoiceRepositoryFacade,
	bookings portsrepo.BookingReader,
	catalog portsrepo.CatalogReader,
	minter portsrepo.IdentifierMinter,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoices: invoices,
		bookings: bookings,
		catalog:  catalog,
		minter:   minter,
	}
}

// IssueInvoice snapshots the booking's totals into a new invoice, replaces
// any prior invoice for the booking and appends a revenue transaction to
// the audit log. Repeated calls replace the invoice but mint fresh ids and
// new audit entries each time.
func (s *invoiceService) IssueInvoice(ctx context.Context, booking *domain.Booking) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoiceID, err := s.minter.NextID(ctx, domain.CounterInvoice, domain.PrefixInvoice)
	if err != nil {
		return nil, fmt.Errorf("failed to mint invoice id: %w", err)
	}
	txnID, err := s.minter.NextID(ctx, domain.CounterTransaction, domain.PrefixTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to mint transaction id: %w", err)
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:    invoiceID,
		BookingID:    booking.BookingID,
		IssueDate:    now.Format(domain.DateLayout),
		CustomerName: booking.CustomerName(),
		TotalAmount:  booking.TotalBill(),
		AmountPaid:   booking.TotalPaid(),
	}
	txn := domain.Transaction{
		TransactionID: txnID,
		Type:          domain.TransactionRevenue,
		Timestamp:     now,
		Amount:        invoice.TotalAmount,
		Description:   fmt.Sprintf("Invoice %s issued for booking %s", invoiceID, booking.BookingID),
		Details: map[string]string{
			"invoiceId": invoiceID,
			"bookingId": booking.BookingID,
		},
	}

	if err := s.invoices.ReplaceInvoiceForBooking(ctx, invoice, txn); err != nil {
		logger.Error("Failed to store invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, err
	}

	logger.Info("Invoice issued",
		slog.String("invoice_id", invoiceID),
		slog.String("booking_id", booking.BookingID),
		slog.String("total_amount", invoice.TotalAmount.String()),
	)
	return &invoice, nil
}

// InvoiceForBooking returns the booking's current invoice, issuing one
// first when the booking has never been invoiced.
func (s *invoiceService) InvoiceForBooking(ctx context.Context, bookingID string) (*domain.Invoice, *domain.Booking, error) {
	booking, _, err := s.bookings.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}

	invoice, err := s.invoices.FindInvoiceByBookingID(ctx, bookingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, err
		}
		invoice, err = s.IssueInvoice(ctx, booking)
		if err != nil {
			return nil, nil, err
		}
	}
	return invoice, booking, nil
}

// HostelInfo returns the hostel metadata block for invoice headers.
func (s *invoiceService) HostelInfo(ctx context.Context) (domain.HostelInfo, error) {
	return s.catalog.GetHostelInfo(ctx)
}
