package app

import (
	"context"
	"errors"
	"time"

	"venuedesk/internal/domain"
)

// ErrConfirmationPending means the poll ran out of attempts with the payment
// still pending. The caller should tell the user to check their bookings.
var ErrConfirmationPending = errors.New("payment confirmation timed out")

// Payments initiates hosted checkouts and awaits their outcome. The status
// poll is the only repeated request in the whole gateway: fixed interval,
// fixed attempt budget, and it dies with the caller's context so navigating
// away stops it deterministically.
type Payments struct {
	backend  domain.PaymentBackend
	interval time.Duration
	attempts int
}

func NewPayments(b domain.PaymentBackend, interval time.Duration, attempts int) *Payments {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	if attempts <= 0 {
		attempts = 10
	}
	return &Payments{backend: b, interval: interval, attempts: attempts}
}

func (p *Payments) Initiate(ctx context.Context, token, bookingID, successURL, cancelURL string) (domain.Payment, error) {
	return p.backend.InitiatePayment(ctx, token, bookingID, successURL, cancelURL)
}

func (p *Payments) Status(ctx context.Context, sessionID string) (domain.Payment, error) {
	return p.backend.PaymentStatus(ctx, sessionID)
}

// AwaitConfirmation polls the checkout session until it reaches a terminal
// status or the attempt budget runs out.
func (p *Payments) AwaitConfirmation(ctx context.Context, sessionID string) (domain.Payment, error) {
	var last domain.Payment
	for i := 0; i < p.attempts; i++ {
		if i > 0 && !sleepCtx(ctx, p.interval) {
			return last, ctx.Err()
		}
		pay, err := p.backend.PaymentStatus(ctx, sessionID)
		if err != nil {
			return last, err
		}
		last = pay
		switch pay.Status {
		case domain.PaymentPaid, domain.PaymentFailed:
			return pay, nil
		}
	}
	return last, ErrConfirmationPending
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
