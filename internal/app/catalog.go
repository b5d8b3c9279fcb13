package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"venuedesk/internal/domain"
)

// Catalog serves the public browse screens. Each screen issues its grouped
// reads in parallel and fails as a whole if any one of them fails; there is
// no partial rendering and nothing is cached between calls.
type Catalog struct {
	backend domain.CatalogBackend
	ads     domain.AdsBackend
}

func NewCatalog(b domain.CatalogBackend, ads domain.AdsBackend) *Catalog {
	return &Catalog{backend: b, ads: ads}
}

type HomeView struct {
	Ads    []domain.Advertisement `json:"advertisements"`
	Hotels []domain.Hotel         `json:"hotels"`
}

func (c *Catalog) Home(ctx context.Context) (HomeView, error) {
	var view HomeView
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ads, err := c.ads.PublicAds(ctx, nil)
		view.Ads = ads
		return err
	})
	g.Go(func() error {
		hotels, err := c.backend.ListHotels(ctx, domain.HotelQuery{})
		view.Hotels = hotels
		return err
	})
	if err := g.Wait(); err != nil {
		return HomeView{}, err
	}
	return view, nil
}

func (c *Catalog) Hotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	return c.backend.ListHotels(ctx, q)
}

type HotelDetailView struct {
	Hotel    domain.Hotel          `json:"hotel"`
	Rooms    []domain.Room         `json:"rooms"`
	Services []domain.ExtraService `json:"services"`
}

func (c *Catalog) HotelDetail(ctx context.Context, id string) (HotelDetailView, error) {
	var view HotelDetailView
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := c.backend.GetHotel(ctx, id)
		view.Hotel = h
		return err
	})
	g.Go(func() error {
		rs, err := c.backend.ListHotelRooms(ctx, id)
		view.Rooms = rs
		return err
	})
	g.Go(func() error {
		ss, err := c.backend.ListHotelServices(ctx, id)
		view.Services = ss
		return err
	})
	if err := g.Wait(); err != nil {
		return HotelDetailView{}, err
	}
	return view, nil
}

func (c *Catalog) Rooms(ctx context.Context, q domain.RoomQuery) ([]domain.Room, error) {
	return c.backend.SearchRooms(ctx, q)
}

type RoomDetailView struct {
	Room     domain.Room           `json:"room"`
	Hotel    domain.Hotel          `json:"hotel"`
	Services []domain.ExtraService `json:"services"`
}

// RoomDetail loads the room first (its hotel id keys the rest), then the
// hotel and service list together.
func (c *Catalog) RoomDetail(ctx context.Context, id string) (RoomDetailView, error) {
	room, err := c.backend.GetRoom(ctx, id)
	if err != nil {
		return RoomDetailView{}, err
	}
	view := RoomDetailView{Room: room}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := c.backend.GetHotel(ctx, room.HotelID)
		view.Hotel = h
		return err
	})
	g.Go(func() error {
		ss, err := c.backend.ListHotelServices(ctx, room.HotelID)
		view.Services = ss
		return err
	})
	if err := g.Wait(); err != nil {
		return RoomDetailView{}, err
	}
	return view, nil
}

func (c *Catalog) Ads(ctx context.Context, adType *string) ([]domain.Advertisement, error) {
	return c.ads.PublicAds(ctx, adType)
}

// TrackAd records an impression, or a click when clicked is set.
func (c *Catalog) TrackAd(ctx context.Context, adID string, clicked bool) error {
	return c.ads.TrackAd(ctx, adID, clicked)
}
