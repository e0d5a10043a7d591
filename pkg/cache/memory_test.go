package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	mc := NewMemoryCache(WithMaxSize(10))
	defer mc.Close()

	ctx := context.Background()
	type payload struct {
		Symbol string  `json:"symbol"`
		Price  float64 `json:"price"`
	}

	if err := mc.Set(ctx, "quote:AAPL", payload{Symbol: "AAPL", Price: 187.5}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got payload
	if err := mc.Get(ctx, "quote:AAPL", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Symbol != "AAPL" || got.Price != 187.5 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	var out string
	err := mc.Get(context.Background(), "absent", &out)
	if !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestMemoryCacheExpiration(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	ctx := context.Background()
	if err := mc.Set(ctx, "short", "value", 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	var out string
	if err := mc.Get(ctx, "short", &out); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected expired entry to miss, got %v", err)
	}
}

func TestMemoryCacheEviction(t *testing.T) {
	mc := NewMemoryCache(WithMaxSize(2))
	defer mc.Close()

	ctx := context.Background()
	if err := mc.Set(ctx, "a", 1, time.Minute); err != nil {
		t.Fatalf("set a: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if err := mc.Set(ctx, "b", 2, time.Minute); err != nil {
		t.Fatalf("set b: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if err := mc.Set(ctx, "c", 3, time.Minute); err != nil {
		t.Fatalf("set c: %v", err)
	}

	var out int
	if err := mc.Get(ctx, "a", &out); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected oldest key evicted, got %v", err)
	}
	if err := mc.Get(ctx, "c", &out); err != nil {
		t.Fatalf("expected newest key present: %v", err)
	}
}

func TestLayeredCachePromotesRemoteHit(t *testing.T) {
	local := NewMemoryCache()
	remote := NewMemoryCache()
	lc := NewLayeredCache(local, remote)
	defer lc.Close()

	ctx := context.Background()
	if err := remote.Set(ctx, "k", "remote-only", time.Minute); err != nil {
		t.Fatalf("seed remote: %v", err)
	}

	var out string
	if err := lc.Get(ctx, "k", &out); err != nil {
		t.Fatalf("layered get: %v", err)
	}
	if out != "remote-only" {
		t.Fatalf("unexpected value %q", out)
	}
	if err := local.Get(ctx, "k", &out); err != nil {
		t.Fatalf("expected promotion to local layer: %v", err)
	}
}
