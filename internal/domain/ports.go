package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// RemoteError carries the backend's optional human-readable message. The
// taxonomy stays flat: callers surface Detail when present and a generic
// message otherwise.
type RemoteError struct {
	Status int
	Detail string
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// RateTable maps "FROM_to_TO" keys to multipliers, as served by the backend.
type RateTable map[string]float64

// Narrow backend ports. Each service depends only on the slice it uses; the
// venueapi client satisfies all of them.

type AuthBackend interface {
	Login(ctx context.Context, creds Credentials) (token string, user User, err error)
	Register(ctx context.Context, reg Registration) (User, error)
	Me(ctx context.Context, token string) (User, error)
}

type CatalogBackend interface {
	ListHotels(ctx context.Context, q HotelQuery) ([]Hotel, error)
	GetHotel(ctx context.Context, id string) (Hotel, error)
	ListHotelRooms(ctx context.Context, hotelID string) ([]Room, error)
	ListHotelServices(ctx context.Context, hotelID string) ([]ExtraService, error)
	SearchRooms(ctx context.Context, q RoomQuery) ([]Room, error)
	GetRoom(ctx context.Context, id string) (Room, error)
}

type ListingBackend interface {
	CreateHotel(ctx context.Context, token string, d HotelDraft) (Hotel, error)
	UpdateHotel(ctx context.Context, token, id string, d HotelDraft) (Hotel, error)
	CreateRoom(ctx context.Context, token, hotelID string, d RoomDraft) (Room, error)
	CreateService(ctx context.Context, token, hotelID string, d ServiceDraft) (ExtraService, error)
}

type BookingBackend interface {
	CheckAvailability(ctx context.Context, roomID, start, end string) (Availability, error)
	CreateBooking(ctx context.Context, token string, d BookingDraft) (Booking, error)
	ListBookings(ctx context.Context, token string) ([]Booking, error)
	GetBooking(ctx context.Context, token, id string) (Booking, error)
	UpdateBookingStatus(ctx context.Context, token, id string, status BookingStatus, notes *string) (Booking, error)
}

type PaymentBackend interface {
	InitiatePayment(ctx context.Context, token, bookingID, successURL, cancelURL string) (Payment, error)
	PaymentStatus(ctx context.Context, sessionID string) (Payment, error)
}

type AdsBackend interface {
	PublicAds(ctx context.Context, adType *string) ([]Advertisement, error)
	TrackAd(ctx context.Context, adID string, clicked bool) error
}

type AdminBackend interface {
	PendingHotels(ctx context.Context, token string) ([]Hotel, error)
	PendingRooms(ctx context.Context, token string) ([]Room, error)
	ApproveHotel(ctx context.Context, token, id string) error
	RejectHotel(ctx context.Context, token, id, reason string) error
	ApproveRoom(ctx context.Context, token, id string) error
	RejectRoom(ctx context.Context, token, id, reason string) error
}

type CurrencyBackend interface {
	DetectCurrency(ctx context.Context) (string, error)
	Rates(ctx context.Context) (RateTable, error)
}

// Backend is the full outbound surface, for wiring.
type Backend interface {
	AuthBackend
	CatalogBackend
	ListingBackend
	BookingBackend
	PaymentBackend
	AdsBackend
	AdminBackend
	CurrencyBackend
}

// SessionStore persists the auth token + profile blob between requests.
type SessionStore interface {
	Put(ctx context.Context, s Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (Session, bool, error)
	Del(ctx context.Context, id string) error
}
