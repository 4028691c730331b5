package repositories

import (
	"context"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
)

// BookingReader defines read operations for booking data.
type BookingReader interface {
	// FindBookingByID retrieves a booking and its position in the stored
	// sequence. The position allows in-place replacement on update.
	// Returns apperrors.ErrNotFound (position -1) when the id is unknown.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, int, error)

	// ListBookings returns all bookings in creation order.
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}

// BookingWriter defines write operations for booking data. Every write
// rewrites the whole persisted document.
type BookingWriter interface {
	// AppendBooking adds a new booking to the end of the sequence.
	AppendBooking(ctx context.Context, booking domain.Booking) error

	// ReplaceBooking overwrites the booking at the given position.
	ReplaceBooking(ctx context.Context, position int, booking domain.Booking) error

	// DeleteBooking removes the booking entirely. Associated invoices and
	// transactions are left untouched. Returns apperrors.ErrNotFound when
	// the id is unknown.
	DeleteBooking(ctx context.Context, bookingID string) error
}

// BookingRepositoryFacade combines all booking repository interfaces.
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}
