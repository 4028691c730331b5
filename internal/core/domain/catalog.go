package domain

import "github.com/shopspring/decimal"

// HostelInfo is the static hostel metadata shown on invoices and the
// dashboard. It is seeded once and rarely mutated.
type HostelInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Room is a catalog entry for a physical room. The catalog defines the fixed
// inventory; booking operations never mutate it.
type Room struct {
	Type      string          `json:"type"`
	BasePrice decimal.Decimal `json:"basePrice"`
}

// CatalogService is a purchasable add-on service. Bookings embed a snapshot
// of these fields at the time the service is used.
type CatalogService struct {
	ServiceID string          `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
}
