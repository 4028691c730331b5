package domain_test

import (
	"testing"
	"time"

	"github.com/hellodalat/hostel_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkin  string
		checkout string
		want     int
	}{
		{
			name:     "two night stay",
			checkin:  "2024-01-01",
			checkout: "2024-01-03",
			want:     2,
		},
		{
			name:     "single night stay",
			checkin:  "2024-01-01",
			checkout: "2024-01-02",
			want:     1,
		},
		{
			name:     "same day charges one night",
			checkin:  "2024-01-01",
			checkout: "2024-01-01",
			want:     1,
		},
		{
			name:     "inverted dates charge one night",
			checkin:  "2024-01-05",
			checkout: "2024-01-01",
			want:     1,
		},
		{
			name:     "malformed checkin yields zero",
			checkin:  "not-a-date",
			checkout: "2024-01-03",
			want:     0,
		},
		{
			name:     "malformed checkout yields zero",
			checkin:  "2024-01-01",
			checkout: "",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.NightsBetween(tt.checkin, tt.checkout)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBooking_TotalBill(t *testing.T) {
	// Two nights in room 202 at 450,000/night plus two bottles of water.
	booking := domain.Booking{
		CheckinDate:  "2024-03-10",
		CheckoutDate: "2024-03-12",
		RoomsBooked: []domain.BookedRoom{
			{RoomID: "202", AgreedPrice: decimal.NewFromInt(450000), RoomType: "Phòng đôi"},
		},
		ServicesUsed: []domain.UsedService{
			{ServiceID: "DV1", Name: "Nước suối", Unit: "chai", Price: decimal.NewFromInt(10000), Quantity: 2},
		},
	}

	assert.Equal(t, 2, booking.Nights())
	assert.True(t, booking.RoomCost().Equal(decimal.NewFromInt(900000)))
	assert.True(t, booking.ServiceCost().Equal(decimal.NewFromInt(20000)))
	assert.True(t, booking.TotalBill().Equal(decimal.NewFromInt(920000)))
}

func TestBooking_TotalBill_MalformedDates(t *testing.T) {
	booking := domain.Booking{
		CheckinDate:  "garbage",
		CheckoutDate: "2024-03-12",
		RoomsBooked: []domain.BookedRoom{
			{RoomID: "101", AgreedPrice: decimal.NewFromInt(150000)},
		},
	}

	// Zero nights means the room cost degrades to zero instead of failing.
	assert.Equal(t, 0, booking.Nights())
	assert.True(t, booking.TotalBill().IsZero())
}

func TestBooking_TotalPaid(t *testing.T) {
	booking := domain.Booking{
		Payments: []domain.Payment{
			{Amount: decimal.NewFromInt(500000), Method: "cash"},
			{Amount: decimal.NewFromInt(420000), Method: "transfer"},
		},
	}
	assert.True(t, booking.TotalPaid().Equal(decimal.NewFromInt(920000)))
}

func TestBooking_CustomerName(t *testing.T) {
	individual := domain.Booking{GuestType: domain.GuestIndividual, GuestName: "Nguyễn Văn An"}
	group := domain.Booking{GuestType: domain.GuestGroup, GroupLeaderName: "Trần Thị Bích", GuestName: "ignored"}

	assert.Equal(t, "Nguyễn Văn An", individual.CustomerName())
	assert.Equal(t, "Trần Thị Bích", group.CustomerName())
}

func TestBooking_OverlapsStay(t *testing.T) {
	booking := domain.Booking{
		CheckinDate:  "2024-01-01",
		CheckoutDate: "2024-01-05",
	}

	parse := func(s string) time.Time {
		ts, err := time.Parse(domain.DateLayout, s)
		assert.NoError(t, err)
		return ts
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{
			name:  "range starting on checkout does not conflict",
			start: "2024-01-05",
			end:   "2024-01-10",
			want:  false,
		},
		{
			name:  "range ending on checkin does not conflict",
			start: "2023-12-28",
			end:   "2024-01-01",
			want:  false,
		},
		{
			name:  "range overlapping the last night conflicts",
			start: "2024-01-04",
			end:   "2024-01-10",
			want:  true,
		},
		{
			name:  "range fully inside the stay conflicts",
			start: "2024-01-02",
			end:   "2024-01-03",
			want:  true,
		},
		{
			name:  "range containing the stay conflicts",
			start: "2023-12-30",
			end:   "2024-02-01",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.OverlapsStay(parse(tt.start), parse(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBooking_OverlapsStay_MalformedDates(t *testing.T) {
	booking := domain.Booking{CheckinDate: "bad", CheckoutDate: "2024-01-05"}
	start, _ := time.Parse(domain.DateLayout, "2024-01-01")
	end, _ := time.Parse(domain.DateLayout, "2024-01-10")
	assert.False(t, booking.OverlapsStay(start, end))
}

func TestBooking_MatchesSearch(t *testing.T) {
	booking := domain.Booking{
		BookingID: "B12",
		GuestName: "Nguyễn Văn An",
		Phone:     "0912345678",
		Email:     "an.nguyen@example.com",
	}

	assert.True(t, booking.MatchesSearch(""))
	assert.True(t, booking.MatchesSearch("b12"))
	assert.True(t, booking.MatchesSearch("Văn"))
	assert.True(t, booking.MatchesSearch("0912"))
	assert.True(t, booking.MatchesSearch("EXAMPLE.COM"))
	assert.False(t, booking.MatchesSearch("no-such-guest"))
}
