package dto

import (
	"github.com/hellodalat/hostel_backend/internal/core/domain"
)

// DashboardSummaryResponse carries the derived metrics for the dashboard.
// RevenueToday keeps the original display format: a thousands-separated
// amount suffixed with " VNĐ".
type DashboardSummaryResponse struct {
	RevenueToday       string `json:"revenueToday"`
	OccupiedRoomsCount int    `json:"occupiedRoomsCount"`
	TotalRooms         int    `json:"totalRooms"`
	CheckinsToday      int    `json:"checkinsToday"`
}

// CalendarDataResponse bundles the room catalog with all bookings for the
// availability calendar.
type CalendarDataResponse struct {
	Rooms    map[string]domain.Room `json:"rooms"`
	Bookings []BookingResponse      `json:"bookings"`
}

// AvailableRoomsResponse lists the rooms free for a queried date range along
// with the full catalog for display.
type AvailableRoomsResponse struct {
	AvailableRooms []string               `json:"availableRooms"`
	Rooms          map[string]domain.Room `json:"rooms"`
}
