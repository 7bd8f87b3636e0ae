package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"buspass/internal/domain"
	"buspass/internal/domain/models"
	"buspass/internal/domain/pass"
)

func TestMemoryStoreExpiry(t *testing.T) {
	clock := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Minute)
	store.now = func() time.Time { return clock }
	ctx := context.Background()

	if err := store.Set(ctx, "s1", "k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if b, err := store.Get(ctx, "s1", "k"); err != nil || string(b) != "v" {
		t.Fatalf("Get = %q, %v", b, err)
	}
	if _, err := store.Get(ctx, "s2", "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other session must not see the key, got %v", err)
	}

	clock = clock.Add(time.Minute)
	if _, err := store.Get(ctx, "s1", "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expired entry not swept")
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	v := []byte("abc")
	_ = store.Set(ctx, "s", "k", v)
	v[0] = 'x'
	got, _ := store.Get(ctx, "s", "k")
	if string(got) != "abc" {
		t.Fatalf("stored value aliased caller slice: %q", got)
	}
}

func TestSessionPassInfoRoundTripAndClear(t *testing.T) {
	ctx := context.Background()
	sess := New(NewMemoryStore(time.Hour), "visitor-1")

	if _, err := sess.LoadPassInfo(ctx); !domain.IsStateMissing(err) {
		t.Fatalf("expected state missing on empty session, got %v", err)
	}

	info := models.ClientPassInfo{
		PassType:     pass.OneMonth,
		BookingID:    12,
		PassID:       2,
		UserName:     "Asha Patil",
		AadharNumber: "123456789012",
		Date:         time.Date(2025, 1, 10, 11, 30, 0, 0, time.UTC),
		PassNumber:   "PMPMLKOT123456",
	}
	if err := sess.SavePassInfo(ctx, info); err != nil {
		t.Fatalf("SavePassInfo: %v", err)
	}
	got, err := sess.LoadPassInfo(ctx)
	if err != nil {
		t.Fatalf("LoadPassInfo: %v", err)
	}
	if got.PassNumber != info.PassNumber || !got.Date.Equal(info.Date) || got.BookingID != 12 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if err := sess.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := sess.LoadPassInfo(ctx); !domain.IsStateMissing(err) {
		t.Fatalf("expected state missing after Clear, got %v", err)
	}
}

func TestSessionUnreadableStash(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	sess := New(store, "visitor-2")

	_ = store.Set(ctx, sess.ID, PassInfoKey, []byte("{not json"))
	_, err := sess.LoadPassInfo(ctx)
	var missing domain.StateMissingError
	if !errors.As(err, &missing) || missing.Msg != msgUnreadablePass {
		t.Fatalf("expected unreadable state error, got %v", err)
	}

	_ = store.Set(ctx, sess.ID, PassInfoKey, []byte(`{"passType":"yearly"}`))
	if _, err := sess.LoadPassInfo(ctx); !domain.IsStateMissing(err) {
		t.Fatalf("unknown pass type should count as missing, got %v", err)
	}
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client, err := NewRedisClient(ctx, RedisConfig{Addr: addr})
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	defer client.Close()

	store := NewRedisStore(client, time.Minute)
	sid := "test-" + time.Now().Format("150405.000000")
	if err := store.Set(ctx, sid, "k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if b, err := store.Get(ctx, sid, "k"); err != nil || string(b) != "v" {
		t.Fatalf("Get = %q, %v", b, err)
	}
	if err := store.Delete(ctx, sid, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, sid, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
