package jsonstore

import (
	"context"
	"fmt"

	"github.com/hellodalat/hostel_backend/internal/apperrors"
	"github.com/hellodalat/hostel_backend/internal/core/domain"
)

// BookingRepository implements the booking repository ports over the
// document store.
type BookingRepository struct {
	store *Store
}

// NewBookingRepository creates a BookingRepository backed by the store.
func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

// FindBookingByID returns the booking and its position in the sequence, or
// apperrors.ErrNotFound with position -1.
func (r *BookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, int, error) {
	var found *domain.Booking
	position := -1
	err := r.store.view(func(doc *domain.Document) error {
		for i := range doc.Bookings {
			if doc.Bookings[i].BookingID == bookingID {
				b := doc.Bookings[i]
				found = &b
				position = i
				return nil
			}
		}
		return fmt.Errorf("booking %s: %w", bookingID, apperrors.ErrNotFound)
	})
	if err != nil {
		return nil, -1, err
	}
	return found, position, nil
}

// ListBookings returns all bookings in creation order.
func (r *BookingRepository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.store.view(func(doc *domain.Document) error {
		out = append([]domain.Booking{}, doc.Bookings...)
		return nil
	})
	return out, err
}

// AppendBooking adds the booking to the end of the sequence and persists.
func (r *BookingRepository) AppendBooking(ctx context.Context, booking domain.Booking) error {
	return r.store.update(func(doc *domain.Document) error {
		doc.Bookings = append(doc.Bookings, booking)
		return nil
	})
}

// ReplaceBooking overwrites the booking at the given position and persists.
func (r *BookingRepository) ReplaceBooking(ctx context.Context, position int, booking domain.Booking) error {
	return r.store.update(func(doc *domain.Document) error {
		if position < 0 || position >= len(doc.Bookings) {
			return fmt.Errorf("booking position %d: %w", position, apperrors.ErrNotFound)
		}
		doc.Bookings[position] = booking
		return nil
	})
}

// DeleteBooking removes the booking entirely. Invoices and transactions that
// reference the id are left untouched, as is the counter that minted it.
func (r *BookingRepository) DeleteBooking(ctx context.Context, bookingID string) error {
	return r.store.update(func(doc *domain.Document) error {
		for i := range doc.Bookings {
			if doc.Bookings[i].BookingID == bookingID {
				doc.Bookings = append(doc.Bookings[:i], doc.Bookings[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("booking %s: %w", bookingID, apperrors.ErrNotFound)
	})
}
