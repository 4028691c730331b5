package domain

import "github.com/shopspring/decimal"

// Counter names used to mint entity identifiers. Counters only ever grow;
// an id is never reissued even after the entity it named is deleted.
const (
	CounterBookingIndividual = "booking_le"
	CounterBookingGroup      = "booking_doan"
	CounterService           = "service"
	CounterInvoice           = "invoice"
	CounterTransaction       = "transaction"
)

// Identifier prefixes paired with the counters above.
const (
	PrefixBookingIndividual = "B"
	PrefixBookingGroup      = "D"
	PrefixService           = "DV"
	PrefixInvoice           = "HD-"
	PrefixTransaction       = "GD-"
)

// Document is the root aggregate: the entire persisted state of the hostel.
// It is loaded wholesale, mutated in memory and rewritten wholesale.
type Document struct {
	Info                  HostelInfo       `json:"info"`
	Rooms                 map[string]Room  `json:"rooms"`
	ServiceCatalog        []CatalogService `json:"serviceCatalog"`
	Bookings              []Booking        `json:"bookings"`
	Invoices              []Invoice        `json:"invoices"`
	FinancialTransactions []Transaction    `json:"financialTransactions"`
	Counters              map[string]int64 `json:"counters"`
}

// EnsureIntegrity repairs a freshly loaded document: collections and the five
// named counters must exist, and every booking must carry its nested
// sequences as empty slices rather than nulls. Returns true when anything
// had to be repaired.
func (d *Document) EnsureIntegrity() bool {
	repaired := false
	if d.Rooms == nil {
		d.Rooms = map[string]Room{}
		repaired = true
	}
	if d.ServiceCatalog == nil {
		d.ServiceCatalog = []CatalogService{}
		repaired = true
	}
	if d.Bookings == nil {
		d.Bookings = []Booking{}
		repaired = true
	}
	if d.Invoices == nil {
		d.Invoices = []Invoice{}
		repaired = true
	}
	if d.FinancialTransactions == nil {
		d.FinancialTransactions = []Transaction{}
		repaired = true
	}
	if d.Counters == nil {
		d.Counters = map[string]int64{}
		repaired = true
	}
	for _, name := range []string{
		CounterBookingIndividual,
		CounterBookingGroup,
		CounterService,
		CounterInvoice,
		CounterTransaction,
	} {
		if _, ok := d.Counters[name]; !ok {
			d.Counters[name] = 0
			repaired = true
		}
	}
	for i := range d.Bookings {
		b := &d.Bookings[i]
		if b.RoomsBooked == nil {
			b.RoomsBooked = []BookedRoom{}
			repaired = true
		}
		if b.ServicesUsed == nil {
			b.ServicesUsed = []UsedService{}
			repaired = true
		}
		if b.Payments == nil {
			b.Payments = []Payment{}
			repaired = true
		}
	}
	return repaired
}

// ServiceByID looks up a catalog service. Returns nil when the id is unknown.
func (d *Document) ServiceByID(serviceID string) *CatalogService {
	for i := range d.ServiceCatalog {
		if d.ServiceCatalog[i].ServiceID == serviceID {
			return &d.ServiceCatalog[i]
		}
	}
	return nil
}

// DefaultDocument is the seed substituted when the store file is missing or
// unparsable. Room inventory and service catalog mirror the hostel's actual
// offering; the service counter accounts for the seeded catalog ids.
func DefaultDocument() *Document {
	vnd := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	doc := &Document{
		Info: HostelInfo{
			Name:    "Hello Dalat Hostel",
			Address: "12 Nam Kỳ Khởi Nghĩa, Phường 1, Đà Lạt",
			Phone:   "0263 3822 099",
		},
		Rooms: map[string]Room{
			"101": {Type: "Dorm 6 giường", BasePrice: vnd(150000)},
			"102": {Type: "Dorm 6 giường", BasePrice: vnd(150000)},
			"201": {Type: "Phòng đơn", BasePrice: vnd(350000)},
			"202": {Type: "Phòng đôi", BasePrice: vnd(450000)},
			"203": {Type: "Phòng đôi", BasePrice: vnd(450000)},
			"301": {Type: "Phòng gia đình", BasePrice: vnd(650000)},
		},
		ServiceCatalog: []CatalogService{
			{ServiceID: "DV1", Name: "Nước suối", Unit: "chai", Price: vnd(10000)},
			{ServiceID: "DV2", Name: "Giặt ủi", Unit: "kg", Price: vnd(30000)},
			{ServiceID: "DV3", Name: "Thuê xe máy", Unit: "ngày", Price: vnd(120000)},
			{ServiceID: "DV4", Name: "Ăn sáng", Unit: "suất", Price: vnd(40000)},
			{ServiceID: "DV5", Name: "Đưa đón sân bay", Unit: "chuyến", Price: vnd(250000)},
		},
		Bookings:              []Booking{},
		Invoices:              []Invoice{},
		FinancialTransactions: []Transaction{},
		Counters: map[string]int64{
			CounterBookingIndividual: 0,
			CounterBookingGroup:      0,
			CounterService:           5,
			CounterInvoice:           0,
			CounterTransaction:       0,
		},
	}
	return doc
}
