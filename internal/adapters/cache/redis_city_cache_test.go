package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisCityCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c := NewRedisCityCache(mr.Addr(), ttl)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func TestRedisCityCacheRoundTrip(t *testing.T) {
	c, _ := newRedisCache(t, time.Hour)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "19.0760,72.8777"); err != nil || ok {
		t.Fatalf("empty get: ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Put(ctx, "19.0760,72.8777", "Mumbai"); err != nil {
		t.Fatalf("put: %v", err)
	}

	city, ok, err := c.Get(ctx, "19.0760,72.8777")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || city != "Mumbai" {
		t.Fatalf("got (%q, %v), want (Mumbai, true)", city, ok)
	}
}

func TestRedisCityCacheExpiry(t *testing.T) {
	c, mr := newRedisCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Put(ctx, "48.8566,2.3522", "Paris"); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, "48.8566,2.3522"); err != nil || ok {
		t.Fatalf("expired get: ok=%v err=%v, want miss", ok, err)
	}
}

func TestRedisCityCacheRejectsEmptyValues(t *testing.T) {
	c, _ := newRedisCache(t, time.Hour)
	ctx := context.Background()

	if err := c.Put(ctx, "", "Paris"); err == nil {
		t.Fatal("expected error for empty key")
	}
	if err := c.Put(ctx, "48.8566,2.3522", " "); err == nil {
		t.Fatal("expected error for empty city")
	}
}
