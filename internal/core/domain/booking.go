package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for check-in/check-out and
// invoice issue dates throughout the persisted document.
const DateLayout = "2006-01-02"

// BookingStatus indicates the lifecycle state of a booking.
type BookingStatus string

const (
	StatusBooked     BookingStatus = "booked"
	StatusCheckedIn  BookingStatus = "checked-in"
	StatusCheckedOut BookingStatus = "checked-out"
	StatusCancelled  BookingStatus = "cancelled"
)

// GuestType distinguishes individual from group bookings. It selects the
// counter used to mint the booking id and which name field is populated.
type GuestType string

const (
	GuestIndividual GuestType = "individual"
	GuestGroup      GuestType = "group"
)

// BookedRoom is one room line on a booking. Price and room type are captured
// at booking time and stay fixed even if the room catalog changes later.
type BookedRoom struct {
	RoomID      string          `json:"roomId"`
	AgreedPrice decimal.Decimal `json:"agreedPrice"`
	RoomType    string          `json:"roomType"`
}

// UsedService is a catalog service snapshot attached to a booking, plus the
// quantity consumed.
type UsedService struct {
	ServiceID string          `json:"serviceId"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Payment is a single payment recorded against a booking. The timestamp is
// assigned by the server when the payment is added.
type Payment struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Timestamp time.Time       `json:"timestamp"`
	Note      string          `json:"note"`
}

// Booking is the central aggregate of the system.
type Booking struct {
	BookingID       string        `json:"bookingId"`
	GuestType       GuestType     `json:"guestType"`
	GuestName       string        `json:"guestName,omitempty"`
	GroupLeaderName string        `json:"groupLeaderName,omitempty"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email"`
	CheckinDate     string        `json:"checkinDate"`
	CheckoutDate    string        `json:"checkoutDate"`
	RoomsBooked     []BookedRoom  `json:"roomsBooked"`
	ServicesUsed    []UsedService `json:"servicesUsed"`
	Payments        []Payment     `json:"payments"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// NightsBetween returns the billable nights between two calendar dates.
// A stay is never billed for less than one night, even when the dates are
// equal or inverted. Malformed dates yield zero nights so that cost
// computation degrades to zero instead of failing.
func NightsBetween(checkinDate, checkoutDate string) int {
	checkin, errIn := time.Parse(DateLayout, checkinDate)
	checkout, errOut := time.Parse(DateLayout, checkoutDate)
	if errIn != nil || errOut != nil {
		return 0
	}
	nights := int(checkout.Sub(checkin).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// Nights returns the billable nights for this booking's stay.
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckinDate, b.CheckoutDate)
}

// RoomCost is the sum of agreed room prices multiplied by the nights stayed.
func (b *Booking) RoomCost() decimal.Decimal {
	nights := decimal.NewFromInt(int64(b.Nights()))
	cost := decimal.Zero
	for _, room := range b.RoomsBooked {
		cost = cost.Add(room.AgreedPrice.Mul(nights))
	}
	return cost
}

// ServiceCost is the sum of service snapshot prices multiplied by quantity.
func (b *Booking) ServiceCost() decimal.Decimal {
	cost := decimal.Zero
	for _, svc := range b.ServicesUsed {
		cost = cost.Add(svc.Price.Mul(decimal.NewFromInt(int64(svc.Quantity))))
	}
	return cost
}

// TotalBill is room cost plus service cost.
func (b *Booking) TotalBill() decimal.Decimal {
	return b.RoomCost().Add(b.ServiceCost())
}

// TotalPaid sums all payments recorded so far.
func (b *Booking) TotalPaid() decimal.Decimal {
	paid := decimal.Zero
	for _, p := range b.Payments {
		paid = paid.Add(p.Amount)
	}
	return paid
}

// CustomerName returns the name field that matches the guest type.
func (b *Booking) CustomerName() string {
	if b.GuestType == GuestGroup {
		return b.GroupLeaderName
	}
	return b.GuestName
}

// OverlapsStay reports whether this booking's stay overlaps the half-open
// query range [start, end). A booking occupies its rooms for
// [checkin, checkout), so adjacent stays do not conflict. Bookings with
// malformed dates never overlap anything.
func (b *Booking) OverlapsStay(start, end time.Time) bool {
	checkin, errIn := time.Parse(DateLayout, b.CheckinDate)
	checkout, errOut := time.Parse(DateLayout, b.CheckoutDate)
	if errIn != nil || errOut != nil {
		return false
	}
	return start.Before(checkout) && checkin.Before(end)
}

// MatchesSearch reports whether the query matches the booking id, either name
// field, phone or email, case-insensitively. An empty query matches all.
func (b *Booking) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range []string{b.BookingID, b.GuestName, b.GroupLeaderName, b.Phone, b.Email} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
