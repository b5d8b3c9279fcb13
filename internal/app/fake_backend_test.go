package app_test

import (
	"context"
	"errors"
	"time"

	"venuedesk/internal/domain"
)

// fakeBackend implements domain.Backend through overridable hooks; tests set
// only the calls they care about.
type fakeBackend struct {
	loginFn    func(ctx context.Context, creds domain.Credentials) (string, domain.User, error)
	registerFn func(ctx context.Context, reg domain.Registration) (domain.User, error)
	meFn       func(ctx context.Context, token string) (domain.User, error)

	listHotelsFn        func(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error)
	getHotelFn          func(ctx context.Context, id string) (domain.Hotel, error)
	listHotelRoomsFn    func(ctx context.Context, hotelID string) ([]domain.Room, error)
	listHotelServicesFn func(ctx context.Context, hotelID string) ([]domain.ExtraService, error)
	searchRoomsFn       func(ctx context.Context, q domain.RoomQuery) ([]domain.Room, error)
	getRoomFn           func(ctx context.Context, id string) (domain.Room, error)

	createBookingFn func(ctx context.Context, token string, d domain.BookingDraft) (domain.Booking, error)
	listBookingsFn  func(ctx context.Context, token string) ([]domain.Booking, error)
	getBookingFn    func(ctx context.Context, token, id string) (domain.Booking, error)
	updateStatusFn  func(ctx context.Context, token, id string, st domain.BookingStatus, notes *string) (domain.Booking, error)

	initiatePaymentFn func(ctx context.Context, token, bookingID, successURL, cancelURL string) (domain.Payment, error)
	paymentStatusFn   func(ctx context.Context, sessionID string) (domain.Payment, error)

	publicAdsFn func(ctx context.Context, adType *string) ([]domain.Advertisement, error)

	pendingHotelsFn func(ctx context.Context, token string) ([]domain.Hotel, error)
	pendingRoomsFn  func(ctx context.Context, token string) ([]domain.Room, error)

	detectFn func(ctx context.Context) (string, error)
	ratesFn  func(ctx context.Context) (domain.RateTable, error)
}

var errNotWired = errors.New("fake: call not wired")

func (f *fakeBackend) Login(ctx context.Context, creds domain.Credentials) (string, domain.User, error) {
	if f.loginFn == nil {
		return "", domain.User{}, errNotWired
	}
	return f.loginFn(ctx, creds)
}

func (f *fakeBackend) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	if f.registerFn == nil {
		return domain.User{}, errNotWired
	}
	return f.registerFn(ctx, reg)
}

func (f *fakeBackend) Me(ctx context.Context, token string) (domain.User, error) {
	if f.meFn == nil {
		return domain.User{}, errNotWired
	}
	return f.meFn(ctx, token)
}

func (f *fakeBackend) ListHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	if f.listHotelsFn == nil {
		return nil, errNotWired
	}
	return f.listHotelsFn(ctx, q)
}

func (f *fakeBackend) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	if f.getHotelFn == nil {
		return domain.Hotel{}, errNotWired
	}
	return f.getHotelFn(ctx, id)
}

func (f *fakeBackend) ListHotelRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	if f.listHotelRoomsFn == nil {
		return nil, errNotWired
	}
	return f.listHotelRoomsFn(ctx, hotelID)
}

func (f *fakeBackend) ListHotelServices(ctx context.Context, hotelID string) ([]domain.ExtraService, error) {
	if f.listHotelServicesFn == nil {
		return nil, errNotWired
	}
	return f.listHotelServicesFn(ctx, hotelID)
}

func (f *fakeBackend) SearchRooms(ctx context.Context, q domain.RoomQuery) ([]domain.Room, error) {
	if f.searchRoomsFn == nil {
		return nil, errNotWired
	}
	return f.searchRoomsFn(ctx, q)
}

func (f *fakeBackend) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	if f.getRoomFn == nil {
		return domain.Room{}, errNotWired
	}
	return f.getRoomFn(ctx, id)
}

func (f *fakeBackend) CreateHotel(ctx context.Context, token string, d domain.HotelDraft) (domain.Hotel, error) {
	return domain.Hotel{}, errNotWired
}

func (f *fakeBackend) UpdateHotel(ctx context.Context, token, id string, d domain.HotelDraft) (domain.Hotel, error) {
	return domain.Hotel{}, errNotWired
}

func (f *fakeBackend) CreateRoom(ctx context.Context, token, hotelID string, d domain.RoomDraft) (domain.Room, error) {
	return domain.Room{}, errNotWired
}

func (f *fakeBackend) CreateService(ctx context.Context, token, hotelID string, d domain.ServiceDraft) (domain.ExtraService, error) {
	return domain.ExtraService{}, errNotWired
}

func (f *fakeBackend) CheckAvailability(ctx context.Context, roomID, start, end string) (domain.Availability, error) {
	return domain.Availability{IsAvailable: true}, nil
}

func (f *fakeBackend) CreateBooking(ctx context.Context, token string, d domain.BookingDraft) (domain.Booking, error) {
	if f.createBookingFn == nil {
		return domain.Booking{}, errNotWired
	}
	return f.createBookingFn(ctx, token, d)
}

func (f *fakeBackend) ListBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	if f.listBookingsFn == nil {
		return nil, errNotWired
	}
	return f.listBookingsFn(ctx, token)
}

func (f *fakeBackend) GetBooking(ctx context.Context, token, id string) (domain.Booking, error) {
	if f.getBookingFn == nil {
		return domain.Booking{}, errNotWired
	}
	return f.getBookingFn(ctx, token, id)
}

func (f *fakeBackend) UpdateBookingStatus(ctx context.Context, token, id string, st domain.BookingStatus, notes *string) (domain.Booking, error) {
	if f.updateStatusFn == nil {
		return domain.Booking{}, errNotWired
	}
	return f.updateStatusFn(ctx, token, id, st, notes)
}

func (f *fakeBackend) InitiatePayment(ctx context.Context, token, bookingID, successURL, cancelURL string) (domain.Payment, error) {
	if f.initiatePaymentFn == nil {
		return domain.Payment{}, errNotWired
	}
	return f.initiatePaymentFn(ctx, token, bookingID, successURL, cancelURL)
}

func (f *fakeBackend) PaymentStatus(ctx context.Context, sessionID string) (domain.Payment, error) {
	if f.paymentStatusFn == nil {
		return domain.Payment{}, errNotWired
	}
	return f.paymentStatusFn(ctx, sessionID)
}

func (f *fakeBackend) PublicAds(ctx context.Context, adType *string) ([]domain.Advertisement, error) {
	if f.publicAdsFn == nil {
		return nil, errNotWired
	}
	return f.publicAdsFn(ctx, adType)
}

func (f *fakeBackend) TrackAd(ctx context.Context, adID string, clicked bool) error { return nil }

func (f *fakeBackend) PendingHotels(ctx context.Context, token string) ([]domain.Hotel, error) {
	if f.pendingHotelsFn == nil {
		return nil, errNotWired
	}
	return f.pendingHotelsFn(ctx, token)
}

func (f *fakeBackend) PendingRooms(ctx context.Context, token string) ([]domain.Room, error) {
	if f.pendingRoomsFn == nil {
		return nil, errNotWired
	}
	return f.pendingRoomsFn(ctx, token)
}

func (f *fakeBackend) ApproveHotel(ctx context.Context, token, id string) error        { return nil }
func (f *fakeBackend) RejectHotel(ctx context.Context, token, id, reason string) error { return nil }
func (f *fakeBackend) ApproveRoom(ctx context.Context, token, id string) error         { return nil }
func (f *fakeBackend) RejectRoom(ctx context.Context, token, id, reason string) error  { return nil }

func (f *fakeBackend) DetectCurrency(ctx context.Context) (string, error) {
	if f.detectFn == nil {
		return "", errNotWired
	}
	return f.detectFn(ctx)
}

func (f *fakeBackend) Rates(ctx context.Context) (domain.RateTable, error) {
	if f.ratesFn == nil {
		return nil, errNotWired
	}
	return f.ratesFn(ctx)
}

// fakeStore is an in-memory SessionStore.
type fakeStore struct {
	sessions map[string]domain.Session
}

func newFakeStore() *fakeStore { return &fakeStore{sessions: map[string]domain.Session{}} }

func (s *fakeStore) Put(ctx context.Context, sess domain.Session, ttl time.Duration) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *fakeStore) Get(ctx context.Context, id string) (domain.Session, bool, error) {
	sess, ok := s.sessions[id]
	return sess, ok, nil
}

func (s *fakeStore) Del(ctx context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}
