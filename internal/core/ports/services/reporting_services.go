package services

import (
	"context"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
	"github.com/hellodalat/hostel_backend/internal/dto"
)

// ReportingSvcFacade defines the derived read views served by the dashboard
// and calendar endpoints.
type ReportingSvcFacade interface {
	// DashboardSummary computes today's revenue, occupancy and check-in
	// counts from the current document.
	DashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)

	// UpcomingBookings returns bookings still in status "booked".
	UpcomingBookings(ctx context.Context) ([]domain.Booking, error)

	// CalendarData returns the room catalog together with all bookings.
	CalendarData(ctx context.Context) (*dto.CalendarDataResponse, error)

	// FullDocument reloads the document from disk and returns it wholesale.
	FullDocument(ctx context.Context) (*domain.Document, error)
}
