package redisad

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"venuedesk/internal/adapters/observability"
	"venuedesk/internal/domain"
)

// Store keeps sessions (backend token + profile blob) keyed by session id.
type Store struct{ c *redis.Client }

func New(addr, pass string, db int) *Store {
	return &Store{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func NewFromClient(c *redis.Client) *Store { return &Store{c: c} }

func key(id string) string { return "session:" + id }

func (s *Store) Put(ctx context.Context, sess domain.Session, ttl time.Duration) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	observability.ObserveSession("create")
	return s.c.Set(ctx, key(sess.ID), b, ttl).Err()
}

func (s *Store) Get(ctx context.Context, id string) (domain.Session, bool, error) {
	v, err := s.c.Get(ctx, key(id)).Bytes()
	if err == redis.Nil {
		observability.ObserveSession("miss")
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, err
	}
	var sess domain.Session
	if err := json.Unmarshal(v, &sess); err != nil {
		return domain.Session{}, false, err
	}
	observability.ObserveSession("hit")
	return sess, true, nil
}

func (s *Store) Del(ctx context.Context, id string) error {
	observability.ObserveSession("delete")
	return s.c.Del(ctx, key(id)).Err()
}
