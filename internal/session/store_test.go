package session

import (
	"context"
	"testing"
	"time"

	"github.com/bloomstitch/storefront-backend/internal/cart"
	"github.com/bloomstitch/storefront-backend/pkg/redis"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	state, err := store.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.Cart.Empty() {
		t.Fatal("unknown session should start with an empty cart")
	}

	state.Cart.Add(cart.ItemSnapshot{ID: "flower-rose", Kind: cart.LineKindStandard, Name: "Rose", Category: "flowers", Price: 1200}, 2, "Maroon")
	if err := store.Save(ctx, "sess-1", state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Cart.Count() != 2 {
		t.Fatalf("expected persisted cart, got count %d", loaded.Cart.Count())
	}

	if err := store.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	fresh, err := store.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if !fresh.Cart.Empty() {
		t.Fatal("deleted session should come back empty")
	}
}

func TestMemoryStoreExpiresIdleSessions(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(time.Minute)
	current := time.Unix(1700000000, 0)
	store.now = func() time.Time { return current }

	ctx := context.Background()
	state := NewState()
	state.Cart.Add(cart.ItemSnapshot{ID: "keychain-panda", Kind: cart.LineKindStandard, Name: "Panda Keychain", Category: "keychains", Price: 450}, 1, "")
	if err := store.Save(ctx, "sess-2", state); err != nil {
		t.Fatalf("save: %v", err)
	}

	current = current.Add(2 * time.Minute)
	loaded, err := store.Get(ctx, "sess-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !loaded.Cart.Empty() {
		t.Fatal("expired session should come back empty")
	}
}

type fakeRedis struct {
	values map[string]string
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", redis.ErrNotFound
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeRedis) SessionKey(sessionID string) string {
	return "bs:session:" + sessionID
}

func TestRedisStoreRoundTrip(t *testing.T) {
	t.Parallel()

	fake := &fakeRedis{values: map[string]string{}}
	store := &RedisStore{client: fake, ttl: time.Hour}
	ctx := context.Background()

	state, err := store.Get(ctx, "sess-3")
	if err != nil {
		t.Fatalf("get on empty store: %v", err)
	}
	if !state.Cart.Empty() {
		t.Fatal("unknown session should start empty")
	}

	state.Cart.Add(cart.ItemSnapshot{ID: "flower-daisy", Kind: cart.LineKindStandard, Name: "Daisy", Category: "flowers", Price: 800}, 3, "Pink")
	if err := state.Builder.SetFlowerQuantity("flower-lily", 2); err != nil {
		t.Fatalf("builder: %v", err)
	}
	if err := store.Save(ctx, "sess-3", state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Get(ctx, "sess-3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Cart.Subtotal() != 2400 {
		t.Fatalf("cart did not survive the round trip: %+v", loaded.Cart.Lines())
	}
	if loaded.Builder.FlowerQuantity("flower-lily") != 2 {
		t.Fatal("builder did not survive the round trip")
	}

	if err := store.Delete(ctx, "sess-3"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := fake.values["bs:session:sess-3"]; ok {
		t.Fatal("delete should remove the key")
	}
}
