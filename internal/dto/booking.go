package dto

import (
	"time"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BookedRoomRequest is one requested room line on booking creation. The
// price is the rate agreed with the guest, which may differ from the
// catalog base price.
type BookedRoomRequest struct {
	RoomID string          `json:"roomId" binding:"required"`
	Price  decimal.Decimal `json:"price"`
}

// CreateBookingRequest defines the data needed to create a new booking.
type CreateBookingRequest struct {
	GuestType       domain.GuestType    `json:"guestType" binding:"required,oneof=individual group"`
	GuestName       string              `json:"guestName"`
	GroupLeaderName string              `json:"groupLeaderName"`
	Phone           string              `json:"phone"`
	Email           string              `json:"email" binding:"omitempty,email"`
	CheckinDate     string              `json:"checkinDate" binding:"required,datetime=2006-01-02"`
	CheckoutDate    string              `json:"checkoutDate" binding:"required,datetime=2006-01-02"`
	Rooms           []BookedRoomRequest `json:"rooms" binding:"required,min=1,dive"`
}

// UpdateBookingRequest defines the fields a caller may change on an existing
// booking. Pointers distinguish "not provided" from zero values; structural
// fields (roomsBooked, servicesUsed, payments, status) are deliberately not
// updatable through this request.
type UpdateBookingRequest struct {
	GuestName       *string `json:"guestName"`
	GroupLeaderName *string `json:"groupLeaderName"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email" binding:"omitempty"`
	CheckinDate     *string `json:"checkinDate" binding:"omitempty,datetime=2006-01-02"`
	CheckoutDate    *string `json:"checkoutDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateStatusRequest carries the new lifecycle state for a booking. Only
// the vocabulary is validated; any known status may follow any other.
type UpdateStatusRequest struct {
	Status domain.BookingStatus `json:"status" binding:"required,oneof=booked checked-in checked-out cancelled"`
}

// AddPaymentRequest records a payment against a booking. The timestamp is
// assigned server-side.
type AddPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method" binding:"required"`
	Note   string          `json:"note"`
}

// AddServiceRequest attaches a catalog service to a booking.
type AddServiceRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// BookingResponse defines the data returned for a booking. Mirrors
// domain.Booking plus the derived bill figures.
type BookingResponse struct {
	BookingID       string               `json:"bookingId"`
	GuestType       domain.GuestType     `json:"guestType"`
	GuestName       string               `json:"guestName,omitempty"`
	GroupLeaderName string               `json:"groupLeaderName,omitempty"`
	Phone           string               `json:"phone"`
	Email           string               `json:"email"`
	CheckinDate     string               `json:"checkinDate"`
	CheckoutDate    string               `json:"checkoutDate"`
	Nights          int                  `json:"nights"`
	RoomsBooked     []domain.BookedRoom  `json:"roomsBooked"`
	ServicesUsed    []domain.UsedService `json:"servicesUsed"`
	Payments        []domain.Payment     `json:"payments"`
	Status          domain.BookingStatus `json:"status"`
	TotalBill       decimal.Decimal      `json:"totalBill"`
	TotalPaid       decimal.Decimal      `json:"totalPaid"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// ToBookingResponse converts a domain.Booking to its response DTO.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:       b.BookingID,
		GuestType:       b.GuestType,
		GuestName:       b.GuestName,
		GroupLeaderName: b.GroupLeaderName,
		Phone:           b.Phone,
		Email:           b.Email,
		CheckinDate:     b.CheckinDate,
		CheckoutDate:    b.CheckoutDate,
		Nights:          b.Nights(),
		RoomsBooked:     b.RoomsBooked,
		ServicesUsed:    b.ServicesUsed,
		Payments:        b.Payments,
		Status:          b.Status,
		TotalBill:       b.TotalBill(),
		TotalPaid:       b.TotalPaid(),
		CreatedAt:       b.CreatedAt,
	}
}

// ToBookingResponses maps a slice of bookings to response DTOs.
func ToBookingResponses(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i := range bookings {
		out[i] = ToBookingResponse(&bookings[i])
	}
	return out
}
