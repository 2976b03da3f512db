package payment

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*NonceStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewNonceStore(rdb, 5*time.Minute), mr
}

func TestNonceStore_FirstConsumerWins(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	ok, err := store.Consume(ctx, 0, "0xabc")
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if !ok {
		t.Fatal("first consume must succeed")
	}

	ok, err = store.Consume(ctx, 0, "0xabc")
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if ok {
		t.Error("replayed nonce accepted")
	}
}

// The same nonce value under a different apiId is a different challenge.
func TestNonceStore_ScopedByAPIID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if ok, _ := store.Consume(ctx, 0, "0xabc"); !ok {
		t.Fatal("first consume must succeed")
	}
	if ok, _ := store.Consume(ctx, 1, "0xabc"); !ok {
		t.Error("nonce under a different apiId must be independent")
	}
}

func TestNonceStore_ExpiryReopensNonce(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if ok, _ := store.Consume(ctx, 0, "0xabc"); !ok {
		t.Fatal("first consume must succeed")
	}
	mr.FastForward(6 * time.Minute)
	if ok, _ := store.Consume(ctx, 0, "0xabc"); !ok {
		t.Error("nonce must be reusable after TTL expiry")
	}
}

// A nil store disables replay protection entirely.
func TestNonceStore_NilDisabled(t *testing.T) {
	var store *NonceStore
	for i := 0; i < 3; i++ {
		ok, err := store.Consume(context.Background(), 0, "0xabc")
		if err != nil || !ok {
			t.Fatalf("nil store must always accept: ok=%v err=%v", ok, err)
		}
	}
}
