package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
	portssvc "github.com/hellodalat/hostel_backend/internal/core/ports/services"
	"github.com/hellodalat/hostel_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockDocumentReader is a mock type for the DocumentReader interface
type MockDocumentReader struct {
	mock.Mock
}

func (m *MockDocumentReader) Snapshot(ctx context.Context) (*domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentReader) Reload(ctx context.Context) (*domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

// --- Test Suite Setup ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockBookings *MockBookingRepository
	mockInvoices *MockInvoiceRepository
	mockCatalog  *MockCatalogReader
	mockDocument *MockDocumentReader
	service      portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockBookings = new(MockBookingRepository)
	suite.mockInvoices = new(MockInvoiceRepository)
	suite.mockCatalog = new(MockCatalogReader)
	suite.mockDocument = new(MockDocumentReader)
	suite.service = services.NewReportingService(suite.mockBookings, suite.mockInvoices, suite.mockCatalog, suite.mockDocument)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestDashboardSummary() {
	ctx := context.Background()
	today := time.Now().Format(domain.DateLayout)

	invoices := []domain.Invoice{
		{InvoiceID: "HD-1", IssueDate: today, TotalAmount: decimal.NewFromInt(920000)},
		{InvoiceID: "HD-2", IssueDate: today, TotalAmount: decimal.NewFromInt(80000)},
		{InvoiceID: "HD-3", IssueDate: "2020-01-01", TotalAmount: decimal.NewFromInt(5000000)},
	}
	bookings := []domain.Booking{
		{
			BookingID:   "B1",
			Status:      domain.StatusCheckedIn,
			CheckinDate: today,
			RoomsBooked: []domain.BookedRoom{{RoomID: "101"}, {RoomID: "202"}},
		},
		{
			BookingID:   "B2",
			Status:      domain.StatusCheckedIn,
			CheckinDate: "2020-01-01",
			RoomsBooked: []domain.BookedRoom{{RoomID: "101"}},
		},
		{
			BookingID:   "B3",
			Status:      domain.StatusBooked,
			CheckinDate: today,
			RoomsBooked: []domain.BookedRoom{{RoomID: "301"}},
		},
		{
			BookingID:   "B4",
			Status:      domain.StatusCancelled,
			CheckinDate: today,
			RoomsBooked: []domain.BookedRoom{{RoomID: "203"}},
		},
	}

	suite.mockInvoices.On("ListInvoices", ctx).Return(invoices, nil).Once()
	suite.mockBookings.On("ListBookings", ctx).Return(bookings, nil).Once()
	suite.mockCatalog.On("ListRooms", ctx).Return(testRooms(), nil).Once()

	summary, err := suite.service.DashboardSummary(ctx)

	suite.Require().NoError(err)
	// Only invoices issued today count, formatted for display.
	suite.Equal("1,000,000 VNĐ", summary.RevenueToday)
	// Rooms 101 and 202 are occupied; 101 is counted once.
	suite.Equal(2, summary.OccupiedRoomsCount)
	suite.Equal(2, summary.TotalRooms)
	// B1 and B3 check in today; the cancelled B4 does not count.
	suite.Equal(2, summary.CheckinsToday)
}

func (suite *ReportingServiceTestSuite) TestUpcomingBookings() {
	ctx := context.Background()
	bookings := []domain.Booking{
		{BookingID: "B1", Status: domain.StatusBooked},
		{BookingID: "B2", Status: domain.StatusCheckedIn},
		{BookingID: "B3", Status: domain.StatusBooked},
		{BookingID: "B4", Status: domain.StatusCheckedOut},
	}
	suite.mockBookings.On("ListBookings", ctx).Return(bookings, nil).Once()

	upcoming, err := suite.service.UpcomingBookings(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(upcoming, 2)
	suite.Equal("B1", upcoming[0].BookingID)
	suite.Equal("B3", upcoming[1].BookingID)
}

func (suite *ReportingServiceTestSuite) TestCalendarData() {
	ctx := context.Background()
	bookings := []domain.Booking{
		{BookingID: "B1", Status: domain.StatusBooked, CheckinDate: "2024-03-10", CheckoutDate: "2024-03-12"},
	}
	suite.mockCatalog.On("ListRooms", ctx).Return(testRooms(), nil).Once()
	suite.mockBookings.On("ListBookings", ctx).Return(bookings, nil).Once()

	data, err := suite.service.CalendarData(ctx)

	suite.Require().NoError(err)
	suite.Len(data.Rooms, 2)
	suite.Require().Len(data.Bookings, 1)
	suite.Equal(2, data.Bookings[0].Nights)
}

func (suite *ReportingServiceTestSuite) TestFullDocument_ReloadsFromDisk() {
	ctx := context.Background()
	doc := domain.DefaultDocument()
	suite.mockDocument.On("Reload", ctx).Return(doc, nil).Once()

	got, err := suite.service.FullDocument(ctx)

	suite.Require().NoError(err)
	suite.Equal("Hello Dalat Hostel", got.Info.Name)
	suite.mockDocument.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
