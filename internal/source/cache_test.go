package source

import (
	"context"
	"testing"
	"time"

	"trailviewer/internal/trail"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestCacheRoundTrip(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	cache := NewCache(client, time.Minute)
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "local:.", "a.gpx"); ok {
		t.Fatalf("expected miss")
	}

	want := trail.New("a", []trail.Point{{Lat: 52.0, Lon: 5.0}, {Lat: 52.0, Lon: 5.1}})
	cache.Put(ctx, "local:.", "a.gpx", want)

	got, ok := cache.Get(ctx, "local:.", "a.gpx")
	if !ok {
		t.Fatalf("expected hit")
	}
	if got.Name != want.Name || got.Length != want.Length || got.Centre != want.Centre || len(got.Points) != 2 {
		t.Fatalf("unexpected cached trail: %+v", got)
	}

	s.FastForward(2 * time.Minute)
	if _, ok := cache.Get(ctx, "local:.", "a.gpx"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestCacheCorruptEntry(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	_ = s.Set(cacheKey("src", "bad.gpx"), "{not json")
	cache := NewCache(client, 0)
	if _, ok := cache.Get(context.Background(), "src", "bad.gpx"); ok {
		t.Fatalf("expected miss on corrupt entry")
	}
}

func TestCacheDisabled(t *testing.T) {
	cache := NewCache(nil, time.Minute)
	cache.Put(context.Background(), "src", "a.gpx", trail.New("a", nil))
	if _, ok := cache.Get(context.Background(), "src", "a.gpx"); ok {
		t.Fatalf("expected miss without redis")
	}

	var nilCache *Cache
	if _, ok := nilCache.Get(context.Background(), "src", "a.gpx"); ok {
		t.Fatalf("expected miss on nil cache")
	}
}

func TestCacheUnavailable(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()
	s.Close()

	cache := NewCache(client, time.Minute)
	cache.Put(context.Background(), "src", "a.gpx", trail.New("a", nil))
	if _, ok := cache.Get(context.Background(), "src", "a.gpx"); ok {
		t.Fatalf("expected miss when redis is down")
	}
}
