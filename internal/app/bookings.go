package app

import (
	"context"
	"time"

	"venuedesk/internal/domain"
)

// ServicePick is an add-on selection as it arrives from the form: id plus
// quantity. Unit prices are filled in here from the fetched service list,
// never trusted from the request.
type ServicePick struct {
	ServiceID string `json:"service_id"`
	Quantity  int    `json:"quantity"`
}

type BookingRequest struct {
	StartDate       string             `json:"start_date"`
	StartTime       string             `json:"start_time"`
	EndDate         string             `json:"end_date"`
	EndTime         string             `json:"end_time"`
	BookingType     domain.BookingType `json:"booking_type"`
	GuestCount      int                `json:"guest_count"`
	SpecialRequests *string            `json:"special_requests,omitempty"`
	Services        []ServicePick      `json:"services"`
	ContactPerson   string             `json:"contact_person"`
	ContactPhone    string             `json:"contact_phone"`
	ContactEmail    string             `json:"contact_email"`
	CompanyName     *string            `json:"company_name,omitempty"`
}

func (r BookingRequest) stay() Stay {
	return Stay{
		StartDate: r.StartDate, StartTime: r.StartTime,
		EndDate: r.EndDate, EndTime: r.EndTime,
		Type: r.BookingType,
	}
}

func (r BookingRequest) contact() Contact {
	return Contact{Person: r.ContactPerson, Phone: r.ContactPhone, Email: r.ContactEmail}
}

type Bookings struct {
	catalog domain.CatalogBackend
	backend domain.BookingBackend
	now     func() time.Time
}

func NewBookings(catalog domain.CatalogBackend, backend domain.BookingBackend) *Bookings {
	return &Bookings{catalog: catalog, backend: backend, now: time.Now}
}

type QuoteView struct {
	Pricing  Pricing `json:"pricing"`
	Currency string  `json:"currency"`
}

// Quote prices the current form state without submitting anything. The zero
// Pricing comes back for incomplete selections.
func (b *Bookings) Quote(ctx context.Context, roomID string, req BookingRequest) (QuoteView, error) {
	room, selected, err := b.load(ctx, roomID, req.Services)
	if err != nil {
		return QuoteView{}, err
	}
	return QuoteView{
		Pricing:  ComputePricing(req.stay(), room, selected),
		Currency: room.Currency,
	}, nil
}

// Create runs the validation gate and submits. Gate failures return before
// any write reaches the backend; the backend recomputes the authoritative
// total on its side, so the prices sent along are advisory.
func (b *Bookings) Create(ctx context.Context, token, roomID string, req BookingRequest) (domain.Booking, error) {
	room, selected, err := b.load(ctx, roomID, req.Services)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := ValidateBooking(b.now(), req.stay(), req.GuestCount, room, req.contact()); err != nil {
		return domain.Booking{}, err
	}

	lines := make([]domain.ServiceLine, 0, len(selected))
	for _, sel := range selected {
		qty := sel.Quantity
		if qty < 1 {
			qty = 1
		}
		unit := sel.Service.UnitPrice()
		lines = append(lines, domain.ServiceLine{
			ServiceID:  sel.Service.ID,
			Quantity:   qty,
			UnitPrice:  unit,
			TotalPrice: unit * float64(qty),
		})
	}

	draft := domain.BookingDraft{
		RoomID:          roomID,
		StartDate:       req.StartDate + "T" + req.StartTime + ":00",
		EndDate:         req.EndDate + "T" + req.EndTime + ":00",
		GuestCount:      req.GuestCount,
		BookingType:     req.BookingType,
		SpecialRequests: req.SpecialRequests,
		ExtraServices:   lines,
		ContactPerson:   req.ContactPerson,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
		CompanyName:     req.CompanyName,
	}
	return b.backend.CreateBooking(ctx, token, draft)
}

func (b *Bookings) List(ctx context.Context, token string) ([]domain.Booking, error) {
	return b.backend.ListBookings(ctx, token)
}

func (b *Bookings) Get(ctx context.Context, token, id string) (domain.Booking, error) {
	return b.backend.GetBooking(ctx, token, id)
}

// Cancel is submit-then-refetch: the status patch goes out, then the booking
// is re-read rather than patched locally.
func (b *Bookings) Cancel(ctx context.Context, token, id string) (domain.Booking, error) {
	if _, err := b.backend.UpdateBookingStatus(ctx, token, id, domain.BookingCancelled, nil); err != nil {
		return domain.Booking{}, err
	}
	return b.backend.GetBooking(ctx, token, id)
}

func (b *Bookings) Availability(ctx context.Context, roomID, start, end string) (domain.Availability, error) {
	return b.backend.CheckAvailability(ctx, roomID, start, end)
}

// load fetches the room and resolves service picks against the hotel's
// actual service list.
func (b *Bookings) load(ctx context.Context, roomID string, picks []ServicePick) (domain.Room, []SelectedService, error) {
	room, err := b.catalog.GetRoom(ctx, roomID)
	if err != nil {
		return domain.Room{}, nil, err
	}
	if len(picks) == 0 {
		return room, nil, nil
	}

	services, err := b.catalog.ListHotelServices(ctx, room.HotelID)
	if err != nil {
		return domain.Room{}, nil, err
	}
	byID := make(map[string]domain.ExtraService, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	selected := make([]SelectedService, 0, len(picks))
	for _, p := range picks {
		s, ok := byID[p.ServiceID]
		if !ok {
			return domain.Room{}, nil, &ValidationError{Message: "selected service is not available"}
		}
		selected = append(selected, SelectedService{Service: s, Quantity: p.Quantity})
	}
	return room, selected, nil
}
