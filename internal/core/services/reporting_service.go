package services

import (
	"context"
	"time"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
	portsrepo "github.com/hellodalat/hostel_backend/internal/core/ports/repositories"
	portssvc "github.com/hellodalat/hostel_backend/internal/core/ports/services"
	"github.com/hellodalat/hostel_backend/internal/dto"
	"github.com/hellodalat/hostel_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// reportingService implements portssvc.ReportingSvcFacade.
type reportingService struct {
	bookings portsrepo.BookingReader
	invoices portsrepo.InvoiceReader
	catalog  portsrepo.CatalogReader
	document portsrepo.DocumentReader
}

// NewReportingService creates the reporting service.
func NewReportingService(
	bookings portsrepo.BookingReader,
	invoices portsrepo.InvoiceReader,
	catalog portsrepo.CatalogReader,
	document portsrepo.DocumentReader,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		bookings: bookings,
		invoices: invoices,
		catalog:  catalog,
		document: document,
	}
}

// DashboardSummary derives today's metrics from the current document:
// revenue is summed over invoices issued today, occupancy counts distinct
// room ids across checked-in bookings, and check-ins count bookings whose
// stay starts today and is not cancelled or already over.
func (s *reportingService) DashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	today := time.Now().Format(domain.DateLayout)

	invoices, err := s.invoices.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	revenueToday := decimal.Zero
	for _, inv := range invoices {
		if inv.IssueDate == today {
			revenueToday = revenueToday.Add(inv.TotalAmount)
		}
	}

	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	occupied := map[string]bool{}
	checkinsToday := 0
	for i := range bookings {
		b := &bookings[i]
		if b.Status == domain.StatusCheckedIn {
			for _, room := range b.RoomsBooked {
				occupied[room.RoomID] = true
			}
		}
		if b.CheckinDate == today && (b.Status == domain.StatusBooked || b.Status == domain.StatusCheckedIn) {
			checkinsToday++
		}
	}

	rooms, err := s.catalog.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryResponse{
		RevenueToday:       utils.FormatVND(revenueToday),
		OccupiedRoomsCount: len(occupied),
		TotalRooms:         len(rooms),
		CheckinsToday:      checkinsToday,
	}, nil
}

// UpcomingBookings returns bookings still in status "booked".
func (s *reportingService) UpcomingBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	upcoming := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == domain.StatusBooked {
			upcoming = append(upcoming, b)
		}
	}
	return upcoming, nil
}

// CalendarData bundles the room catalog with every booking.
func (s *reportingService) CalendarData(ctx context.Context) (*dto.CalendarDataResponse, error) {
	rooms, err := s.catalog.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CalendarDataResponse{
		Rooms:    rooms,
		Bookings: dto.ToBookingResponses(bookings),
	}, nil
}

// FullDocument reloads the persisted document from disk and returns it,
// giving the caller a read-your-writes view of the store file.
func (s *reportingService) FullDocument(ctx context.Context) (*domain.Document, error) {
	return s.document.Reload(ctx)
}
