package domain

import "time"

type BookingType string

const (
	BookingDaily  BookingType = "daily"
	BookingHourly BookingType = "hourly"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// ServiceLine is one selected add-on as submitted with a booking. UnitPrice is
// advisory: the backend recomputes the authoritative total on its side.
type ServiceLine struct {
	ServiceID  string  `json:"service_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type BookingDraft struct {
	RoomID          string        `json:"room_id"`
	StartDate       string        `json:"start_date"` // RFC3339-ish, date + T + time
	EndDate         string        `json:"end_date"`
	GuestCount      int           `json:"guest_count"`
	BookingType     BookingType   `json:"booking_type"`
	SpecialRequests *string       `json:"special_requests,omitempty"`
	ExtraServices   []ServiceLine `json:"extra_services"`
	ContactPerson   string        `json:"contact_person"`
	ContactPhone    string        `json:"contact_phone"`
	ContactEmail    string        `json:"contact_email"`
	CompanyName     *string       `json:"company_name,omitempty"`
}

type Booking struct {
	ID              string        `json:"id"`
	RoomID          string        `json:"room_id"`
	CustomerID      string        `json:"customer_id"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	GuestCount      int           `json:"guest_count"`
	BookingType     BookingType   `json:"booking_type"`
	TotalDays       int           `json:"total_days"`
	TotalHours      *int          `json:"total_hours,omitempty"`
	RoomPrice       float64       `json:"room_price"`
	ServicesPrice   float64       `json:"services_price"`
	TotalPrice      float64       `json:"total_price"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	SpecialRequests *string       `json:"special_requests,omitempty"`
	ExtraServices   []ServiceLine `json:"extra_services"`
	ContactPerson   string        `json:"contact_person"`
	ContactPhone    string        `json:"contact_phone"`
	ContactEmail    string        `json:"contact_email"`
	CompanyName     *string       `json:"company_name,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type Availability struct {
	IsAvailable bool     `json:"is_available"`
	Conflicts   []string `json:"conflicting_bookings"`
}

type Payment struct {
	ID          string        `json:"id"`
	BookingID   string        `json:"booking_id"`
	SessionID   *string       `json:"session_id,omitempty"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	Method      string        `json:"payment_method"`
	Status      PaymentStatus `json:"payment_status"`
	CheckoutURL *string       `json:"checkout_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
