package domain

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// PriceQuote is a price resolved once at the data-access boundary. Converted
// is set when the backend supplied a pre-converted display price; otherwise
// Amount is the raw stored price in Currency and conversion is the caller's
// problem.
type PriceQuote struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Converted bool    `json:"converted"`
}

type Hotel struct {
	ID            string         `json:"id"`
	ManagerID     string         `json:"manager_id"`
	Name          string         `json:"name"`
	Description   *string        `json:"description,omitempty"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	Phone         string         `json:"phone"`
	Email         string         `json:"email"`
	Website       *string        `json:"website,omitempty"`
	Stars         *int           `json:"star_rating,omitempty"`
	Facilities    []string       `json:"facilities"`
	Images        []string       `json:"images"`
	Lat           *float64       `json:"latitude,omitempty"`
	Lon           *float64       `json:"longitude,omitempty"`
	Approval      ApprovalStatus `json:"approval_status"`
	AverageRating float64        `json:"average_rating"`
	TotalReviews  int            `json:"total_reviews"`
}

type Room struct {
	ID            string         `json:"id"`
	HotelID       string         `json:"hotel_id"`
	Name          string         `json:"name"`
	Description   *string        `json:"description,omitempty"`
	Capacity      int            `json:"capacity"`
	AreaSqm       *float64       `json:"area_sqm,omitempty"`
	PricePerDay   float64        `json:"price_per_day"`
	PricePerHour  *float64       `json:"price_per_hour,omitempty"`
	Currency      string         `json:"currency"`
	RoomType      string         `json:"room_type"` // conference|meeting|ballroom
	Features      []string       `json:"features"`
	LayoutOptions []string       `json:"layout_options"`
	Images        []string       `json:"images"`
	IsAvailable   bool           `json:"is_available"`
	Approval      ApprovalStatus `json:"approval_status"`
	AverageRating float64        `json:"average_rating"`
	TotalBookings int            `json:"total_bookings"`

	// Backend-computed display prices, present when the backend knew the
	// caller's currency. HourQuote is nil for rooms without an hourly rate.
	DayQuote  *PriceQuote `json:"day_quote,omitempty"`
	HourQuote *PriceQuote `json:"hour_quote,omitempty"`
}

type ExtraService struct {
	ID          string      `json:"id"`
	HotelID     string      `json:"hotel_id"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Price       float64     `json:"price"`
	Currency    string      `json:"currency"`
	Unit        string      `json:"unit"`     // person|piece|hour|day|package
	Category    string      `json:"category"` // catering|equipment|service|transport|refreshment
	IsAvailable bool        `json:"is_available"`
	Quote       *PriceQuote `json:"quote,omitempty"`
}

// UnitPrice prefers the backend's converted display price over the raw one.
func (s ExtraService) UnitPrice() float64 {
	if s.Quote != nil {
		return s.Quote.Amount
	}
	return s.Price
}

type HotelQuery struct {
	City  *string
	Stars *int
}

type RoomQuery struct {
	City        *string
	MinCapacity *int
	MaxPrice    *float64
	Features    []string
}

type HotelDraft struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Website     *string  `json:"website,omitempty"`
	Stars       *int     `json:"star_rating,omitempty"`
	Facilities  []string `json:"facilities"`
	Images      []string `json:"images"`
	Lat         *float64 `json:"latitude,omitempty"`
	Lon         *float64 `json:"longitude,omitempty"`
}

type RoomDraft struct {
	Name          string   `json:"name"`
	Description   *string  `json:"description,omitempty"`
	Capacity      int      `json:"capacity"`
	AreaSqm       *float64 `json:"area_sqm,omitempty"`
	PricePerDay   float64  `json:"price_per_day"`
	PricePerHour  *float64 `json:"price_per_hour,omitempty"`
	Currency      string   `json:"currency"`
	RoomType      string   `json:"room_type"`
	Features      []string `json:"features"`
	LayoutOptions []string `json:"layout_options"`
	Images        []string `json:"images"`
}

type ServiceDraft struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Unit        string  `json:"unit"`
	Category    string  `json:"category"`
}
