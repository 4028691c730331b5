package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/hellodalat/hostel_backend/internal/apperrors"
	"github.com/hellodalat/hostel_backend/internal/core/domain"
	portsrepo "github.com/hellodalat/hostel_backend/internal/core/ports/repositories"
	portssvc "github.com/hellodalat/hostel_backend/internal/core/ports/services"
	"github.com/hellodalat/hostel_backend/internal/dto"
	"github.com/hellodalat/hostel_backend/internal/middleware"
)

// bookingService implements portssvc.BookingSvcFacade.
type bookingService struct {
	bookings portsrepo.BookingRepositoryFacade
	catalog  portsrepo.CatalogReader
	minter   portsrepo.IdentifierMinter
	invoices portssvc.InvoiceSvcFacade
}

// NewBookingService creates the booking service. The invoice service is
// needed because entering checked-out issues the booking's invoice.
func NewBookingService(
	bookings portsrepo.BookingRepositoryFacade,
	catalog portsrepo.CatalogReader,
	minter portsrepo.IdentifierMinter,
	invoices portssvc.InvoiceSvcFacade,
) portssvc.BookingSvcFacade {
	return &bookingService{
		bookings: bookings,
		catalog:  catalog,
		minter:   minter,
		invoices: invoices,
	}
}

// CreateBooking assigns a fresh id from the guest type's counter, snapshots
// room types from the current catalog and persists the booking in status
// "booked". An unknown room id does not fail the booking: its type snapshot
// falls back to "Unknown".
func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*domain.Booking, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	counterName := domain.CounterBookingIndividual
	prefix := domain.PrefixBookingIndividual
	if req.GuestType == domain.GuestGroup {
		counterName = domain.CounterBookingGroup
		prefix = domain.PrefixBookingGroup
	}

	rooms, err := s.catalog.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load room catalog: %w", err)
	}

	roomsBooked := make([]domain.BookedRoom, 0, len(req.Rooms))
	for _, reqRoom := range req.Rooms {
		roomType := "Unknown"
		if room, ok := rooms[reqRoom.RoomID]; ok {
			roomType = room.Type
		}
		roomsBooked = append(roomsBooked, domain.BookedRoom{
			RoomID:      reqRoom.RoomID,
			AgreedPrice: reqRoom.Price,
			RoomType:    roomType,
		})
	}

	bookingID, err := s.minter.NextID(ctx, counterName, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to mint booking id: %w", err)
	}

	booking := domain.Booking{
		BookingID:    bookingID,
		GuestType:    req.GuestType,
		Phone:        req.Phone,
		Email:        req.Email,
		CheckinDate:  req.CheckinDate,
		CheckoutDate: req.CheckoutDate,
		RoomsBooked:  roomsBooked,
		ServicesUsed: []domain.UsedService{},
		Payments:     []domain.Payment{},
		Status:       domain.StatusBooked,
		CreatedAt:    time.Now(),
	}
	// The guest name lives in the field matching the guest type.
	if req.GuestType == domain.GuestGroup {
		booking.GroupLeaderName = req.GroupLeaderName
	} else {
		booking.GuestName = req.GuestName
	}

	if err := s.bookings.AppendBooking(ctx, booking); err != nil {
		logger.Error("Failed to append booking", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
		return nil, err
	}

	logger.Info("Booking created", slog.String("booking_id", bookingID), slog.String("guest_type", string(req.GuestType)))
	return &booking, nil
}

// GetBookingByID retrieves a single booking.
func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, _, err := s.bookings.FindBookingByID(ctx, bookingID)
	return booking, err
}

// ListBookings returns bookings matching the search query in creation order.
func (s *bookingService) ListBookings(ctx context.Context, search string) ([]domain.Booking, error) {
	all, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return all, nil
	}
	matched := make([]domain.Booking, 0, len(all))
	for _, b := range all {
		if b.MatchesSearch(search) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// UpdateBooking merges the allow-listed request fields into the stored
// booking and persists it in place.
func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req dto.UpdateBookingRequest) (*domain.Booking, error) {
	booking, position, err := s.bookings.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if req.GuestName != nil {
		booking.GuestName = *req.GuestName
	}
	if req.GroupLeaderName != nil {
		booking.GroupLeaderName = *req.GroupLeaderName
	}
	if req.Phone != nil {
		booking.Phone = *req.Phone
	}
	if req.Email != nil {
		booking.Email = *req.Email
	}
	if req.CheckinDate != nil {
		booking.CheckinDate = *req.CheckinDate
	}
	if req.CheckoutDate != nil {
		booking.CheckoutDate = *req.CheckoutDate
	}

	if err := s.bookings.ReplaceBooking(ctx, position, *booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// DeleteBooking removes the booking entity. Invoices and transactions that
// reference its id stay in the document; the id itself is never reused.
func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.bookings.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}
	logger.Info("Booking deleted", slog.String("booking_id", bookingID))
	return nil
}

// UpdateBookingStatus sets the booking status. Any known status may follow
// any other; the only transition with a side effect is entering
// checked-out, which issues the booking's invoice.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	booking, position, err := s.bookings.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	booking.Status = status
	if err := s.bookings.ReplaceBooking(ctx, position, *booking); err != nil {
		return nil, err
	}

	if status == domain.StatusCheckedOut {
		if _, err := s.invoices.IssueInvoice(ctx, booking); err != nil {
			logger.Error("Failed to issue invoice on check-out",
				slog.String("error", err.Error()), slog.String("booking_id", bookingID))
			return nil, err
		}
	}

	logger.Info("Booking status updated", slog.String("booking_id", bookingID), slog.String("status", string(status)))
	return booking, nil
}

// AddPayment appends a payment record with a server-assigned timestamp.
// Existing invoice snapshots are not touched; amountPaid only refreshes the
// next time an invoice is issued for this booking.
func (s *bookingService) AddPayment(ctx context.Context, bookingID string, req dto.AddPaymentRequest) (*domain.Booking, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrValidation)
	}

	booking, position, err := s.bookings.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	booking.Payments = append(booking.Payments, domain.Payment{
		Amount:    req.Amount,
		Method:    req.Method,
		Timestamp: time.Now(),
		Note:      req.Note,
	})
	if err := s.bookings.ReplaceBooking(ctx, position, *booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// AddService snapshots the catalog entry onto the booking with the
// requested quantity. Unknown booking or service ids fail with ErrNotFound.
func (s *bookingService) AddService(ctx context.Context, bookingID string, req dto.AddServiceRequest) (*domain.Booking, error) {
	svc, err := s.catalog.FindServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	booking, position, err := s.bookings.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	booking.ServicesUsed = append(booking.ServicesUsed, domain.UsedService{
		ServiceID: svc.ServiceID,
		Name:      svc.Name,
		Unit:      svc.Unit,
		Price:     svc.Price,
		Quantity:  req.Quantity,
	})
	if err := s.bookings.ReplaceBooking(ctx, position, *booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// CheckAvailability returns the sorted ids of rooms with no overlapping
// non-cancelled booking in the half-open range [checkinDate, checkoutDate).
func (s *bookingService) CheckAvailability(ctx context.Context, checkinDate, checkoutDate string) ([]string, map[string]domain.Room, error) {
	start, errStart := time.Parse(domain.DateLayout, checkinDate)
	end, errEnd := time.Parse(domain.DateLayout, checkoutDate)
	if errStart != nil || errEnd != nil {
		return nil, nil, fmt.Errorf("unparsable availability range %q..%q: %w", checkinDate, checkoutDate, apperrors.ErrComputation)
	}

	rooms, err := s.catalog.ListRooms(ctx)
	if err != nil {
		return nil, nil, err
	}
	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, nil, err
	}

	booked := map[string]bool{}
	for i := range bookings {
		b := &bookings[i]
		if b.Status == domain.StatusCancelled {
			continue
		}
		if !b.OverlapsStay(start, end) {
			continue
		}
		for _, room := range b.RoomsBooked {
			booked[room.RoomID] = true
		}
	}

	available := make([]string, 0, len(rooms))
	for roomID := range rooms {
		if !booked[roomID] {
			available = append(available, roomID)
		}
	}
	sort.Strings(available)
	return available, rooms, nil
}
