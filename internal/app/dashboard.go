package app

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"venuedesk/internal/domain"
)

// HotelPanel is one hotel's slice of the manager dashboard.
type HotelPanel struct {
	Hotel    domain.Hotel          `json:"hotel"`
	Rooms    []domain.Room         `json:"rooms"`
	Services []domain.ExtraService `json:"services"`
}

type DashboardView struct {
	Hotels   []HotelPanel     `json:"hotels"`
	Bookings []domain.Booking `json:"bookings"`
}

// Dashboard aggregates everything a manager sees on one screen. The
// per-hotel fan-out is bounded by a weighted semaphore so a manager with
// many properties cannot stampede the backend.
type Dashboard struct {
	catalog  domain.CatalogBackend
	bookings domain.BookingBackend
	limit    int64
}

func NewDashboard(catalog domain.CatalogBackend, bookings domain.BookingBackend) *Dashboard {
	return &Dashboard{catalog: catalog, bookings: bookings, limit: 4}
}

func (d *Dashboard) View(ctx context.Context, token string, manager domain.User) (DashboardView, error) {
	hotels, err := d.catalog.ListHotels(ctx, domain.HotelQuery{})
	if err != nil {
		return DashboardView{}, err
	}
	mine := hotels[:0:0]
	for _, h := range hotels {
		if h.ManagerID == manager.ID {
			mine = append(mine, h)
		}
	}

	view := DashboardView{Hotels: make([]HotelPanel, len(mine))}
	sem := semaphore.NewWeighted(d.limit)
	g, gctx := errgroup.WithContext(ctx)

	for i, h := range mine {
		i, h := i, h
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			rooms, err := d.catalog.ListHotelRooms(gctx, h.ID)
			if err != nil {
				return err
			}
			services, err := d.catalog.ListHotelServices(gctx, h.ID)
			if err != nil {
				return err
			}
			view.Hotels[i] = HotelPanel{Hotel: h, Rooms: rooms, Services: services}
			return nil
		})
	}
	g.Go(func() error {
		bs, err := d.bookings.ListBookings(gctx, token)
		if err != nil {
			return err
		}
		view.Bookings = bs
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardView{}, err
	}
	return view, nil
}
