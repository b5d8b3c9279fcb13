package app_test

import (
	"context"
	"errors"
	"testing"

	"venuedesk/internal/app"
	"venuedesk/internal/domain"
)

func bookingBackend(created *domain.BookingDraft) *fakeBackend {
	return &fakeBackend{
		getRoomFn: func(ctx context.Context, id string) (domain.Room, error) {
			return domain.Room{ID: id, HotelID: "h1", Capacity: 100, PricePerDay: 1000, Currency: "EUR"}, nil
		},
		listHotelServicesFn: func(ctx context.Context, hotelID string) ([]domain.ExtraService, error) {
			return []domain.ExtraService{
				{ID: "svc-coffee", HotelID: hotelID, Price: 200, Currency: "EUR", Unit: "person"},
			}, nil
		},
		createBookingFn: func(ctx context.Context, token string, d domain.BookingDraft) (domain.Booking, error) {
			*created = d
			return domain.Booking{ID: "b1", RoomID: d.RoomID, Status: domain.BookingPending}, nil
		},
	}
}

func validRequest() app.BookingRequest {
	return app.BookingRequest{
		StartDate: "2030-03-10", StartTime: "09:00",
		EndDate: "2030-03-13", EndTime: "09:00",
		BookingType:   domain.BookingDaily,
		GuestCount:    50,
		Services:      []app.ServicePick{{ServiceID: "svc-coffee", Quantity: 2}},
		ContactPerson: "Ada", ContactPhone: "+90 555 000 0000", ContactEmail: "ada@example.com",
	}
}

func TestBookings_CreateSubmitsDraftWithResolvedPrices(t *testing.T) {
	var created domain.BookingDraft
	be := bookingBackend(&created)
	svc := app.NewBookings(be, be)

	got, err := svc.Create(context.Background(), "tkn", "r1", validRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.ID != "b1" {
		t.Fatalf("unexpected booking: %+v", got)
	}
	if created.StartDate != "2030-03-10T09:00:00" || created.EndDate != "2030-03-13T09:00:00" {
		t.Fatalf("unexpected dates: %s .. %s", created.StartDate, created.EndDate)
	}
	if len(created.ExtraServices) != 1 {
		t.Fatalf("unexpected services: %+v", created.ExtraServices)
	}
	line := created.ExtraServices[0]
	if line.UnitPrice != 200 || line.TotalPrice != 400 || line.Quantity != 2 {
		t.Fatalf("unexpected line: %+v", line)
	}
}

func TestBookings_CreateGateBlocksBeforeNetwork(t *testing.T) {
	be := &fakeBackend{
		getRoomFn: func(ctx context.Context, id string) (domain.Room, error) {
			return domain.Room{ID: id, HotelID: "h1", Capacity: 10, PricePerDay: 1000}, nil
		},
		createBookingFn: func(ctx context.Context, token string, d domain.BookingDraft) (domain.Booking, error) {
			t.Fatal("create must not reach the backend on a gate failure")
			return domain.Booking{}, nil
		},
	}
	svc := app.NewBookings(be, be)

	req := validRequest()
	req.Services = nil
	req.GuestCount = 11 // one over capacity

	_, err := svc.Create(context.Background(), "tkn", "r1", req)
	var ve *app.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestBookings_CreateRejectsUnknownService(t *testing.T) {
	var created domain.BookingDraft
	be := bookingBackend(&created)
	svc := app.NewBookings(be, be)

	req := validRequest()
	req.Services = []app.ServicePick{{ServiceID: "svc-ghost", Quantity: 1}}

	_, err := svc.Create(context.Background(), "tkn", "r1", req)
	var ve *app.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestBookings_QuotePricesDisplayAmounts(t *testing.T) {
	be := &fakeBackend{
		getRoomFn: func(ctx context.Context, id string) (domain.Room, error) {
			return domain.Room{ID: id, HotelID: "h1", Capacity: 100, PricePerDay: 1000, Currency: "EUR"}, nil
		},
		listHotelServicesFn: func(ctx context.Context, hotelID string) ([]domain.ExtraService, error) {
			return []domain.ExtraService{
				{ID: "svc-coffee", Price: 200, Currency: "EUR",
					Quote: &domain.PriceQuote{Amount: 8700, Currency: "TRY", Converted: true}},
			}, nil
		},
	}
	svc := app.NewBookings(be, be)

	view, err := svc.Quote(context.Background(), "r1", validRequest())
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if view.Pricing.Days != 3 || view.Pricing.RoomPrice != 3000 {
		t.Fatalf("unexpected pricing: %+v", view.Pricing)
	}
	if view.Pricing.ServicesPrice != 8700*2 {
		t.Fatalf("services price should prefer display amounts: %+v", view.Pricing)
	}
}

func TestBookings_CancelRefetches(t *testing.T) {
	patched := false
	be := &fakeBackend{
		updateStatusFn: func(ctx context.Context, token, id string, st domain.BookingStatus, notes *string) (domain.Booking, error) {
			if st != domain.BookingCancelled {
				t.Errorf("status = %s", st)
			}
			patched = true
			return domain.Booking{ID: id, Status: st}, nil
		},
		getBookingFn: func(ctx context.Context, token, id string) (domain.Booking, error) {
			if !patched {
				t.Error("refetch must follow the patch")
			}
			return domain.Booking{ID: id, Status: domain.BookingCancelled}, nil
		},
	}
	svc := app.NewBookings(be, be)

	got, err := svc.Cancel(context.Background(), "tkn", "b1")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != domain.BookingCancelled {
		t.Fatalf("unexpected status: %s", got.Status)
	}
}
