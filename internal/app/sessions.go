package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"venuedesk/internal/domain"
)

// Sessions exchanges backend credentials for a gateway session and keeps the
// resulting token + profile in the store until logout, expiry, or a failed
// session check.
type Sessions struct {
	backend domain.AuthBackend
	store   domain.SessionStore
	ttl     time.Duration
}

func NewSessions(b domain.AuthBackend, s domain.SessionStore, ttl time.Duration) *Sessions {
	return &Sessions{backend: b, store: s, ttl: ttl}
}

func (s *Sessions) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	token, user, err := s.backend.Login(ctx, creds)
	if err != nil {
		return domain.Session{}, err
	}
	sess := domain.Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Put(ctx, sess, s.ttl); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

func (s *Sessions) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	return s.backend.Register(ctx, reg)
}

// Resolve turns a gateway session id back into a live session.
func (s *Sessions) Resolve(ctx context.Context, id string) (domain.Session, error) {
	if id == "" {
		return domain.Session{}, domain.ErrUnauthorized
	}
	sess, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, domain.ErrUnauthorized
	}
	return sess, nil
}

// Me re-checks the session against the backend. A rejected token clears the
// stored session so the next request starts logged out.
func (s *Sessions) Me(ctx context.Context, id string) (domain.User, error) {
	sess, err := s.Resolve(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	user, err := s.backend.Me(ctx, sess.Token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			_ = s.store.Del(ctx, id)
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *Sessions) Logout(ctx context.Context, id string) error {
	return s.store.Del(ctx, id)
}
