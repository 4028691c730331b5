package services_test

import (
	"context"
	"testing"

	"github.com/hellodalat/hostel_backend/internal/apperrors"
	"github.com/hellodalat/hostel_backend/internal/core/domain"
	portssvc "github.com/hellodalat/hostel_backend/internal/core/ports/services"
	"github.com/hellodalat/hostel_backend/internal/core/services"
	"github.com/hellodalat/hostel_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockBookingRepository is a mock type for the BookingRepositoryFacade interface
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, int, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(*domain.Booking), args.Int(1), args.Error(2)
}

func (m *MockBookingRepository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) AppendBooking(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) ReplaceBooking(ctx context.Context, position int, booking domain.Booking) error {
	args := m.Called(ctx, position, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteBooking(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

// MockCatalogReader is a mock type for the CatalogReader interface
type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) GetHostelInfo(ctx context.Context) (domain.HostelInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.HostelInfo), args.Error(1)
}

func (m *MockCatalogReader) ListRooms(ctx context.Context) (map[string]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Room), args.Error(1)
}

func (m *MockCatalogReader) FindServiceByID(ctx context.Context, serviceID string) (*domain.CatalogService, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogService), args.Error(1)
}

func (m *MockCatalogReader) ListServices(ctx context.Context) ([]domain.CatalogService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogService), args.Error(1)
}

// MockIdentifierMinter is a mock type for the IdentifierMinter interface
type MockIdentifierMinter struct {
	mock.Mock
}

func (m *MockIdentifierMinter) NextID(ctx context.Context, counterName, prefix string) (string, error) {
	args := m.Called(ctx, counterName, prefix)
	return args.String(0), args.Error(1)
}

// MockInvoiceService is a mock type for the InvoiceSvcFacade interface
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) IssueInvoice(ctx context.Context, booking *domain.Booking) (*domain.Invoice, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) InvoiceForBooking(ctx context.Context, bookingID string) (*domain.Invoice, *domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	var inv *domain.Invoice
	var b *domain.Booking
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Invoice)
	}
	if args.Get(1) != nil {
		b = args.Get(1).(*domain.Booking)
	}
	return inv, b, args.Error(2)
}

func (m *MockInvoiceService) HostelInfo(ctx context.Context) (domain.HostelInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.HostelInfo), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Test Suite Setup ---

type BookingServiceTestSuite struct {
	suite.Suite
	mockBookings *MockBookingRepository
	mockCatalog  *MockCatalogReader
	mockMinter   *MockIdentifierMinter
	mockInvoices *MockInvoiceService
	service      portssvc.BookingSvcFacade
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.mockBookings = new(MockBookingRepository)
	suite.mockCatalog = new(MockCatalogReader)
	suite.mockMinter = new(MockIdentifierMinter)
	suite.mockInvoices = new(MockInvoiceService)
	suite.service = services.NewBookingService(suite.mockBookings, suite.mockCatalog, suite.mockMinter, suite.mockInvoices)
}

func testRooms() map[string]domain.Room {
	return map[string]domain.Room{
		"101": {Type: "Dorm 6 giường", BasePrice: decimal.NewFromInt(150000)},
		"202": {Type: "Phòng đôi", BasePrice: decimal.NewFromInt(450000)},
	}
}

// --- Test Cases ---

func (suite *BookingServiceTestSuite) TestCreateBooking_Individual() {
	ctx := context.Background()
	req := dto.CreateBookingRequest{
		GuestType:    domain.GuestIndividual,
		GuestName:    "Nguyễn Văn An",
		Phone:        "0912345678",
		CheckinDate:  "2024-03-10",
		CheckoutDate: "2024-03-12",
		Rooms: []dto.BookedRoomRequest{
			{RoomID: "202", Price: decimal.NewFromInt(450000)},
		},
	}

	suite.mockCatalog.On("ListRooms", ctx).Return(testRooms(), nil).Once()
	suite.mockMinter.On("NextID", ctx, domain.CounterBookingIndividual, domain.PrefixBookingIndividual).Return("B1", nil).Once()
	suite.mockBookings.On("AppendBooking", ctx, mock.AnythingOfType("domain.Booking")).Return(nil).Once()

	booking, err := suite.service.CreateBooking(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(booking)
	suite.Equal("B1", booking.BookingID)
	suite.Equal(domain.StatusBooked, booking.Status)
	suite.Equal("Nguyễn Văn An", booking.GuestName)
	suite.Empty(booking.GroupLeaderName)
	suite.Require().Len(booking.RoomsBooked, 1)
	suite.Equal("Phòng đôi", booking.RoomsBooked[0].RoomType)
	suite.NotNil(booking.ServicesUsed)
	suite.NotNil(booking.Payments)
	suite.mockBookings.AssertExpectations(suite.T())
	suite.mockMinter.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCreateBooking_GroupUsesGroupCounter() {
	ctx := context.Background()
	req := dto.CreateBookingRequest{
		GuestType:       domain.GuestGroup,
		GroupLeaderName: "Trần Thị Bích",
		CheckinDate:     "2024-03-10",
		CheckoutDate:    "2024-03-12",
		Rooms: []dto.BookedRoomRequest{
			{RoomID: "101", Price: decimal.NewFromInt(150000)},
			{RoomID: "202", Price: decimal.NewFromInt(400000)},
		},
	}

	suite.mockCatalog.On("ListRooms", ctx).Return(testRooms(), nil).Once()
	suite.mockMinter.On("NextID", ctx, domain.CounterBookingGroup, domain.PrefixBookingGroup).Return("D3", nil).Once()
	suite.mockBookings.On("AppendBooking", ctx, mock.AnythingOfType("domain.Booking")).Return(nil).Once()

	booking, err := suite.service.CreateBooking(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("D3", booking.BookingID)
	suite.Equal("Trần Thị Bích", booking.GroupLeaderName)
	suite.Empty(booking.GuestName)
	suite.mockMinter.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCreateBooking_UnknownRoomFallsBack() {
	ctx := context.Background()
	req := dto.CreateBookingRequest{
		GuestType:    domain.GuestIndividual,
		GuestName:    "Lê Minh",
		CheckinDate:  "2024-03-10",
		CheckoutDate: "2024-03-11",
		Rooms: []dto.BookedRoomRequest{
			{RoomID: "999", Price: decimal.NewFromInt(200000)},
		},
	}

	suite.mockCatalog.On("ListRooms", ctx).Return(testRooms(), nil).Once()
	suite.mockMinter.On("NextID", ctx, domain.CounterBookingIndividual, domain.PrefixBookingIndividual).Return("B2", nil).Once()
	suite.mockBookings.On("AppendBooking", ctx, mock.AnythingOfType("domain.Booking")).Return(nil).Once()

	booking, err := suite.service.CreateBooking(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Unknown", booking.RoomsBooked[0].RoomType)
}

func (suite *BookingServiceTestSuite) TestListBookings_FiltersBySearch() {
	ctx := context.Background()
	all := []domain.Booking{
		{BookingID: "B1", GuestName: "Nguyễn Văn An"},
		{BookingID: "B2", GuestName: "Lê Minh"},
		{BookingID: "D1", GroupLeaderName: "Trần Thị Bích"},
	}
	suite.mockBookings.On("ListBookings", ctx).Return(all, nil).Once()

	matched, err := suite.service.ListBookings(ctx, "minh")

	suite.Require().NoError(err)
	suite.Require().Len(matched, 1)
	suite.Equal("B2", matched[0].BookingID)
}

func (suite *BookingServiceTestSuite) TestListBookings_EmptySearchReturnsAll() {
	ctx := context.Background()
	all := []domain.Booking{{BookingID: "B1"}, {BookingID: "B2"}}
	suite.mockBookings.On("ListBookings", ctx).Return(all, nil).Once()

	matched, err := suite.service.ListBookings(ctx, "")

	suite.Require().NoError(err)
	suite.Len(matched, 2)
}

func (suite *BookingServiceTestSuite) TestUpdateBooking_MergesProvidedFields() {
	ctx := context.Background()
	stored := &domain.Booking{
		BookingID:   "B1",
		GuestName:   "Nguyễn Văn An",
		Phone:       "0912345678",
		CheckinDate: "2024-03-10",
	}
	newPhone := "0987654321"
	req := dto.UpdateBookingRequest{Phone: &newPhone}

	suite.mockBookings.On("FindBookingByID", ctx, "B1").Return(stored, 0, nil).Once()
	suite.mockBookings.On("ReplaceBooking", ctx, 0, mock.AnythingOfType("domain.Booking")).Return(nil).Once()

	updated, err := suite.service.UpdateBooking(ctx, "B1", req)

	suite.Require().NoError(err)
	suite.Equal("0987654321", updated.Phone)
	// Fields not in the request stay untouched.
	suite.Equal("Nguyễn Văn An", updated.GuestName)
	suite.Equal("2024-03-10", updated.CheckinDate)
	suite.mockBookings.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestUpdateBooking_NotFound() {
	ctx := context.Background()
	suite.mockBookings.On("FindBookingByID", ctx, "B404").Return(nil, -1, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateBooking(ctx, "B404", dto.UpdateBookingRequest{})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_CheckoutIssuesInvoice() {
	ctx := context.Background()
	stored := &domain.Booking{BookingID: "B1", Status: domain.StatusCheckedIn}
	invoice := &domain.Invoice{InvoiceID: "HD-1", BookingID: "B1"}

	suite.mockBookings.On("FindBookingByID", ctx, "B1").Return(stored, 0, nil).Once()
	suite.mockBookings.On("ReplaceBooking", ctx, 0, mock.AnythingOfType("domain.Booking")).Return(nil).Once()
	suite.mockInvoices.On("IssueInvoice", ctx, mock.AnythingOfType("*domain.Booking")).Return(invoice, nil).Once()

	updated, err := suite.service.UpdateBookingStatus(ctx, "B1", domain.StatusCheckedOut)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCheckedOut, updated.Status)
	suite.mockInvoices.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_NonCheckoutSkipsInvoice() {
	ctx := context.Background()
	stored := &domain.Booking{BookingID: "B1", Status: domain.StatusBooked}

	suite.mockBookings.On("FindBookingByID", ctx, "B1").Return(stored, 0, nil).Once()
	suite.mockBookings.On("ReplaceBooking", ctx, 0, mock.AnythingOfType("domain.Booking")).Return(nil).Once()

	updated, err := suite.service.UpdateBookingStatus(ctx, "B1", domain.StatusCancelled)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, updated.Status)
	suite.mockInvoices.AssertNotCalled(suite.T(), "IssueInvoice", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestAddPayment_AppendsWithTimestamp() {
	ctx := context.Background()
	stored := &domain.Booking{BookingID: "B1", Payments: []domain.Payment{}}
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(500000), Method: "cash", Note: "deposit"}

	suite.mockBookings.On("FindBookingByID", ctx, "B1").Return(stored, 0, nil).Once()
	suite.mockBookings.On("ReplaceBooking", ctx, 0, mock.AnythingOfType("domain.Booking")).Return(nil).Once()

	updated, err := suite.service.AddPayment(ctx, "B1", req)

	suite.Require().NoError(err)
	suite.Require().Len(updated.Payments, 1)
	suite.Equal("cash", updated.Payments[0].Method)
	suite.False(updated.Payments[0].Timestamp.IsZero())
}

func (suite *BookingServiceTestSuite) TestAddPayment_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.AddPayment(ctx, "B1", dto.AddPaymentRequest{Amount: decimal.Zero, Method: "cash"})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AddPayment(ctx, "B1", dto.AddPaymentRequest{Amount: decimal.NewFromInt(-100), Method: "cash"})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	suite.mockBookings.AssertNotCalled(suite.T(), "FindBookingByID", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestAddService_SnapshotsCatalogEntry() {
	ctx := context.Background()
	stored := &domain.Booking{BookingID: "B1", ServicesUsed: []domain.UsedService{}}
	catalogSvc := &domain.CatalogService{ServiceID: "DV1", Name: "Nước suối", Unit: "chai", Price: decimal.NewFromInt(10000)}

	suite.mockCatalog.On("FindServiceByID", ctx, "DV1").Return(catalogSvc, nil).Once()
	suite.mockBookings.On("FindBookingByID", ctx, "B1").Return(stored, 0, nil).Once()
	suite.mockBookings.On("ReplaceBooking", ctx, 0, mock.AnythingOfType("domain.Booking")).Return(nil).Once()

	updated, err := suite.service.AddService(ctx, "B1", dto.AddServiceRequest{ServiceID: "DV1", Quantity: 2})

	suite.Require().NoError(err)
	suite.Require().Len(updated.ServicesUsed, 1)
	suite.Equal("Nước suối", updated.ServicesUsed[0].Name)
	suite.Equal(2, updated.ServicesUsed[0].Quantity)
}

func (suite *BookingServiceTestSuite) TestAddService_UnknownService() {
	ctx := context.Background()
	suite.mockCatalog.On("FindServiceByID", ctx, "DV99").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AddService(ctx, "B1", dto.AddServiceRequest{ServiceID: "DV99", Quantity: 1})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBookings.AssertNotCalled(suite.T(), "FindBookingByID", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestDeleteBooking() {
	ctx := context.Background()
	suite.mockBookings.On("DeleteBooking", ctx, "B1").Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteBooking(ctx, "B1"))
	suite.mockBookings.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCheckAvailability_ExcludesCancelledAndAdjacent() {
	ctx := context.Background()
	bookings := []domain.Booking{
		{
			BookingID:    "B1",
			Status:       domain.StatusBooked,
			CheckinDate:  "2024-01-01",
			CheckoutDate: "2024-01-05",
			RoomsBooked:  []domain.BookedRoom{{RoomID: "202"}},
		},
		{
			BookingID:    "B2",
			Status:       domain.StatusCancelled,
			CheckinDate:  "2024-01-01",
			CheckoutDate: "2024-01-05",
			RoomsBooked:  []domain.BookedRoom{{RoomID: "101"}},
		},
	}
	suite.mockCatalog.On("ListRooms", ctx).Return(testRooms(), nil).Once()
	suite.mockBookings.On("ListBookings", ctx).Return(bookings, nil).Once()

	available, rooms, err := suite.service.CheckAvailability(ctx, "2024-01-04", "2024-01-08")

	suite.Require().NoError(err)
	// 202 is taken by the overlapping booking; the cancelled booking does
	// not block 101.
	suite.Equal([]string{"101"}, available)
	suite.Len(rooms, 2)
}

func (suite *BookingServiceTestSuite) TestCheckAvailability_AdjacentStayDoesNotBlock() {
	ctx := context.Background()
	bookings := []domain.Booking{
		{
			BookingID:    "B1",
			Status:       domain.StatusBooked,
			CheckinDate:  "2024-01-01",
			CheckoutDate: "2024-01-05",
			RoomsBooked:  []domain.BookedRoom{{RoomID: "202"}},
		},
	}
	suite.mockCatalog.On("ListRooms", ctx).Return(testRooms(), nil).Once()
	suite.mockBookings.On("ListBookings", ctx).Return(bookings, nil).Once()

	available, _, err := suite.service.CheckAvailability(ctx, "2024-01-05", "2024-01-10")

	suite.Require().NoError(err)
	suite.Equal([]string{"101", "202"}, available)
}

func (suite *BookingServiceTestSuite) TestCheckAvailability_UnparsableDates() {
	ctx := context.Background()

	_, _, err := suite.service.CheckAvailability(ctx, "not-a-date", "2024-01-10")

	suite.Require().ErrorIs(err, apperrors.ErrComputation)
	suite.mockCatalog.AssertNotCalled(suite.T(), "ListRooms", mock.Anything)
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}
