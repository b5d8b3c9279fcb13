package app

import (
	"fmt"
	"math"
	"time"

	"venuedesk/internal/domain"
)

// Stay is the user's date/time selection as typed into the form: separate
// date and time fields, combined into instants here.
type Stay struct {
	StartDate string // 2006-01-02
	StartTime string // 15:04
	EndDate   string
	EndTime   string
	Type      domain.BookingType
}

type SelectedService struct {
	Service  domain.ExtraService
	Quantity int
}

type Pricing struct {
	Days          int     `json:"days"`
	Hours         int     `json:"hours"`
	RoomPrice     float64 `json:"room_price"`
	ServicesPrice float64 `json:"services_price"`
	TotalPrice    float64 `json:"total_price"`
}

// ComputePricing prices a stay. Incomplete or inverted date ranges yield the
// zero Pricing rather than an error: that is the "not yet ready" state while
// the user is still filling the form. Any partial day or hour bills as a full
// unit, and daily stays bill at least one day.
func ComputePricing(stay Stay, room domain.Room, selected []SelectedService) Pricing {
	start, ok1 := combine(stay.StartDate, stay.StartTime)
	end, ok2 := combine(stay.EndDate, stay.EndTime)
	if !ok1 || !ok2 || !start.Before(end) {
		return Pricing{}
	}

	var p Pricing
	dur := end.Sub(start)

	switch {
	case stay.Type == domain.BookingDaily:
		p.Days = int(math.Ceil(dur.Hours() / 24))
		if p.Days < 1 {
			p.Days = 1
		}
		p.RoomPrice = room.PricePerDay * float64(p.Days)
	case stay.Type == domain.BookingHourly && room.PricePerHour != nil:
		p.Hours = int(math.Ceil(dur.Minutes() / 60))
		p.RoomPrice = *room.PricePerHour * float64(p.Hours)
	}

	for _, sel := range selected {
		qty := sel.Quantity
		if qty < 1 {
			qty = 1
		}
		p.ServicesPrice += sel.Service.UnitPrice() * float64(qty)
	}
	p.TotalPrice = p.RoomPrice + p.ServicesPrice
	return p
}

func combine(date, clock string) (time.Time, bool) {
	if date == "" || clock == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type Contact struct {
	Person string
	Phone  string
	Email  string
}

// ValidationError carries the single user-facing message for a rejected form.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// ValidateBooking is the submission gate. It runs only on an explicit submit,
// never per keystroke, and a failure here never reaches the backend. Guest
// count equal to the room capacity passes; one over does not.
func ValidateBooking(now time.Time, stay Stay, guestCount int, room domain.Room, contact Contact) error {
	if stay.StartDate == "" || stay.EndDate == "" || guestCount == 0 {
		return &ValidationError{Message: "please fill in all required fields"}
	}
	if guestCount > room.Capacity {
		return &ValidationError{Message: fmt.Sprintf("maximum capacity is %d guests", room.Capacity)}
	}

	start, ok1 := combine(stay.StartDate, stay.StartTime)
	end, ok2 := combine(stay.EndDate, stay.EndTime)
	if !ok1 || !ok2 {
		return &ValidationError{Message: "please fill in all required fields"}
	}
	if !start.Before(end) {
		return &ValidationError{Message: "end date must be after start date"}
	}
	if start.Before(now) {
		return &ValidationError{Message: "start date must be in the future"}
	}

	if contact.Person == "" || contact.Phone == "" || contact.Email == "" {
		return &ValidationError{Message: "please fill in the contact details"}
	}
	return nil
}
