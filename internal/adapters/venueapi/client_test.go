package venueapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"venuedesk/internal/adapters/venueapi"
	"venuedesk/internal/domain"
)

func TestClient_GetRoom_ResolvesPricingInfo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rooms/r1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "r1", "hotel_id": "h1", "name": "Grand Ballroom",
			"capacity": 200, "price_per_day": 1000.0, "price_per_hour": 150.0,
			"currency": "EUR", "room_type": "ballroom", "is_available": true,
			"approval_status": "approved",
			"pricing_info": map[string]any{
				"base_price": 1000.0, "base_currency": "EUR",
				"display_price": 43500.0, "display_currency": "TRY",
				"exchange_rate": 43.5, "display_price_per_hour": 6525.0,
			},
		})
	}))
	defer ts.Close()

	cl := venueapi.New(ts.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	room, err := cl.GetRoom(ctx, "r1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if room.DayQuote == nil || !room.DayQuote.Converted || room.DayQuote.Amount != 43500 || room.DayQuote.Currency != "TRY" {
		t.Fatalf("bad day quote: %+v", room.DayQuote)
	}
	if room.HourQuote == nil || room.HourQuote.Amount != 6525 {
		t.Fatalf("bad hour quote: %+v", room.HourQuote)
	}
}

func TestClient_GetRoom_NoPricingInfo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "r2", "hotel_id": "h1", "name": "Meeting Room",
			"capacity": 12, "price_per_day": 250.0, "currency": "EUR",
			"room_type": "meeting", "is_available": true, "approval_status": "approved",
		})
	}))
	defer ts.Close()

	room, err := venueapi.New(ts.URL).GetRoom(context.Background(), "r2")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if room.DayQuote != nil || room.HourQuote != nil {
		t.Fatalf("expected nil quotes, got %+v / %+v", room.DayQuote, room.HourQuote)
	}
}

func TestClient_BearerTokenAttached(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tkn-123" {
			t.Errorf("authorization header = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "u1", "email": "a@b.c", "full_name": "Ada", "role": "customer", "is_active": true})
	}))
	defer ts.Close()

	u, err := venueapi.New(ts.URL).Me(context.Background(), "tkn-123")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.FullName != "Ada" || u.Role != domain.RoleCustomer {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestClient_SentinelErrors(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{404, domain.ErrNotFound},
		{401, domain.ErrUnauthorized},
		{403, domain.ErrForbidden},
	}
	for _, tc := range cases {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))
		_, err := venueapi.New(ts.URL).GetHotel(context.Background(), "x")
		ts.Close()
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: got %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestClient_RemoteDetailSurfaced(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Room is not available for the selected dates"})
	}))
	defer ts.Close()

	_, err := venueapi.New(ts.URL).CreateBooking(context.Background(), "tkn", domain.BookingDraft{})
	var re *domain.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if re.Status != 400 || re.Detail != "Room is not available for the selected dates" {
		t.Fatalf("unexpected remote error: %+v", re)
	}
}

func TestClient_NoRetryOnServerError(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(500)
	}))
	defer ts.Close()

	_, err := venueapi.New(ts.URL).GetHotel(context.Background(), "h1")
	if err == nil {
		t.Fatal("expected error")
	}
	// failures surface immediately, they are never re-attempted
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected exactly 1 request, got %d", n)
	}
}
