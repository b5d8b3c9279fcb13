package app

import (
	"context"

	"venuedesk/internal/domain"
)

// Listings wraps the manager-facing create and edit forms. Drafts go to the
// backend verbatim; created listings come back pending approval.
type Listings struct {
	backend domain.ListingBackend
}

func NewListings(b domain.ListingBackend) *Listings {
	return &Listings{backend: b}
}

func (l *Listings) CreateHotel(ctx context.Context, token string, d domain.HotelDraft) (domain.Hotel, error) {
	return l.backend.CreateHotel(ctx, token, d)
}

func (l *Listings) UpdateHotel(ctx context.Context, token, id string, d domain.HotelDraft) (domain.Hotel, error) {
	return l.backend.UpdateHotel(ctx, token, id, d)
}

func (l *Listings) CreateRoom(ctx context.Context, token, hotelID string, d domain.RoomDraft) (domain.Room, error) {
	return l.backend.CreateRoom(ctx, token, hotelID, d)
}

func (l *Listings) CreateService(ctx context.Context, token, hotelID string, d domain.ServiceDraft) (domain.ExtraService, error) {
	return l.backend.CreateService(ctx, token, hotelID, d)
}
