package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"venuedesk/internal/domain"
)

type PendingView struct {
	Hotels []domain.Hotel `json:"hotels"`
	Rooms  []domain.Room  `json:"rooms"`
}

// Admin drives the approval queue. Decisions are plain proxies; the backend
// enforces the admin role, the gateway only forwards the token.
type Admin struct {
	backend domain.AdminBackend
}

func NewAdmin(b domain.AdminBackend) *Admin {
	return &Admin{backend: b}
}

func (a *Admin) Pending(ctx context.Context, token string) (PendingView, error) {
	var view PendingView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hs, err := a.backend.PendingHotels(gctx, token)
		if err != nil {
			return err
		}
		view.Hotels = hs
		return nil
	})
	g.Go(func() error {
		rs, err := a.backend.PendingRooms(gctx, token)
		if err != nil {
			return err
		}
		view.Rooms = rs
		return nil
	})
	if err := g.Wait(); err != nil {
		return PendingView{}, err
	}
	return view, nil
}

func (a *Admin) ApproveHotel(ctx context.Context, token, id string) error {
	return a.backend.ApproveHotel(ctx, token, id)
}

func (a *Admin) RejectHotel(ctx context.Context, token, id, reason string) error {
	return a.backend.RejectHotel(ctx, token, id, reason)
}

func (a *Admin) ApproveRoom(ctx context.Context, token, id string) error {
	return a.backend.ApproveRoom(ctx, token, id)
}

func (a *Admin) RejectRoom(ctx context.Context, token, id, reason string) error {
	return a.backend.RejectRoom(ctx, token, id, reason)
}
