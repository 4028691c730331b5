package jsonstore

import (
	"context"
	"fmt"

	"github.com/hellodalat/hostel_backend/internal/apperrors"
	"github.com/hellodalat/hostel_backend/internal/core/domain"
)

// InvoiceRepository implements the invoice repository ports over the
// document store.
type InvoiceRepository struct {
	store *Store
}

// NewInvoiceRepository creates an InvoiceRepository backed by the store.
func NewInvoiceRepository(store *Store) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

// FindInvoiceByBookingID returns the current invoice for the booking, or
// apperrors.ErrNotFound when none has been issued.
func (r *InvoiceRepository) FindInvoiceByBookingID(ctx context.Context, bookingID string) (*domain.Invoice, error) {
	var found *domain.Invoice
	err := r.store.view(func(doc *domain.Document) error {
		for i := range doc.Invoices {
			if doc.Invoices[i].BookingID == bookingID {
				inv := doc.Invoices[i]
				found = &inv
				return nil
			}
		}
		return fmt.Errorf("invoice for booking %s: %w", bookingID, apperrors.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ListInvoices returns all stored invoices in issue order.
func (r *InvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var out []domain.Invoice
	err := r.store.view(func(doc *domain.Document) error {
		out = append([]domain.Invoice{}, doc.Invoices...)
		return nil
	})
	return out, err
}

// ReplaceInvoiceForBooking drops every prior invoice for the booking id,
// appends the new invoice and its revenue transaction, and persists all of
// it in one write.
func (r *InvoiceRepository) ReplaceInvoiceForBooking(ctx context.Context, invoice domain.Invoice, txn domain.Transaction) error {
	return r.store.update(func(doc *domain.Document) error {
		kept := doc.Invoices[:0]
		for _, inv := range doc.Invoices {
			if inv.BookingID != invoice.BookingID {
				kept = append(kept, inv)
			}
		}
		doc.Invoices = append(kept, invoice)
		doc.FinancialTransactions = append(doc.FinancialTransactions, txn)
		return nil
	})
}

// ListTransactions returns the append-only audit log in order.
func (r *InvoiceRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := r.store.view(func(doc *domain.Document) error {
		out = append([]domain.Transaction{}, doc.FinancialTransactions...)
		return nil
	})
	return out, err
}
