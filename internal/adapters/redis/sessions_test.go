package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "venuedesk/internal/adapters/redis"
	"venuedesk/internal/domain"
)

func newStore(t *testing.T) (*redisad.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestStore_PutGetDel(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	sess := domain.Session{
		ID:    "sid-1",
		Token: "backend-token",
		User:  domain.User{ID: "u1", Email: "ada@example.com", FullName: "Ada", Role: domain.RoleCustomer, IsActive: true},
	}
	if err := store.Put(ctx, sess, time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := store.Get(ctx, "sid-1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Token != "backend-token" || got.User.Email != "ada@example.com" {
		t.Fatalf("unexpected session: %+v", got)
	}

	if err := store.Del(ctx, "sid-1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "sid-1"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestStore_Expiry(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	sess := domain.Session{ID: "sid-2", Token: "t"}
	if err := store.Put(ctx, sess, time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, _ := store.Get(ctx, "sid-2"); ok {
		t.Fatal("expected session to expire")
	}
}

func TestStore_MissIsNotAnError(t *testing.T) {
	store, _ := newStore(t)
	_, ok, err := store.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}
}
