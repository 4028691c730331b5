package services

import (
	"context"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
	"github.com/hellodalat/hostel_backend/internal/dto"
)

// BookingReaderSvc defines read operations over bookings.
type BookingReaderSvc interface {
	// GetBookingByID retrieves a single booking.
	GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// ListBookings returns bookings matching the search query, in creation
	// order. An empty query returns every booking.
	ListBookings(ctx context.Context, search string) ([]domain.Booking, error)

	// CheckAvailability returns the sorted ids of rooms free for the whole
	// half-open range [checkinDate, checkoutDate), together with the room
	// catalog for display.
	CheckAvailability(ctx context.Context, checkinDate, checkoutDate string) ([]string, map[string]domain.Room, error)
}

// BookingWriterSvc defines operations that mutate bookings.
type BookingWriterSvc interface {
	// CreateBooking creates a booking in status "booked" with room type
	// snapshots resolved from the current catalog.
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*domain.Booking, error)

	// UpdateBooking merges the allow-listed fields of the request into the
	// stored booking.
	UpdateBooking(ctx context.Context, bookingID string, req dto.UpdateBookingRequest) (*domain.Booking, error)

	// DeleteBooking removes the booking. Invoices and transactions that
	// reference it are deliberately left in place.
	DeleteBooking(ctx context.Context, bookingID string) error

	// UpdateBookingStatus sets the booking status. Entering "checked-out"
	// issues the booking's invoice as a side effect.
	UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error)

	// AddPayment appends a payment with a server-assigned timestamp.
	AddPayment(ctx context.Context, bookingID string, req dto.AddPaymentRequest) (*domain.Booking, error)

	// AddService appends a catalog service snapshot with the requested
	// quantity. Fails with ErrNotFound when either the booking or the
	// service id is unknown.
	AddService(ctx context.Context, bookingID string, req dto.AddServiceRequest) (*domain.Booking, error)
}

// BookingSvcFacade combines all booking service interfaces.
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
}
