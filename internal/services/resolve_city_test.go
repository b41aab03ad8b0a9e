package services

import (
	"context"
	"errors"
	"testing"

	"weather-locator/internal/adapters/geocode"
	"weather-locator/internal/domain"
)

// mapCache is an in-memory CityCache for exercising the cache-first path.
type mapCache struct {
	m    map[string]string
	fail bool
}

func newMapCache() *mapCache { return &mapCache{m: map[string]string{}} }

func (c *mapCache) Get(ctx context.Context, key string) (string, bool, error) {
	if c.fail {
		return "", false, errors.New("cache down")
	}
	city, ok := c.m[key]
	return city, ok, nil
}

func (c *mapCache) Put(ctx context.Context, key, city string) error {
	if c.fail {
		return errors.New("cache down")
	}
	c.m[key] = city
	return nil
}

func TestResolveCityCachesResult(t *testing.T) {
	coord := domain.Coordinate{Latitude: 19.076, Longitude: 72.8777}
	geocoder := geocode.NewMockGeocoder(map[domain.Coordinate]string{coord: "Mumbai"})
	cache := newMapCache()

	got := ResolveCity(context.Background(), coord, cache, geocoder)
	if got != "Mumbai" {
		t.Fatalf("city = %q, want Mumbai", got)
	}

	if cached := cache.m[coord.CacheKey()]; cached != "Mumbai" {
		t.Fatalf("cache entry = %q, want Mumbai", cached)
	}
}

func TestResolveCityPrefersCache(t *testing.T) {
	coord := domain.Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	cache := newMapCache()
	cache.m[coord.CacheKey()] = "Paris"

	// The mock has no entry: a geocoder call would fail, so a "Paris" result
	// proves the cache short-circuited it.
	geocoder := geocode.NewMockGeocoder(nil)

	if got := ResolveCity(context.Background(), coord, cache, geocoder); got != "Paris" {
		t.Fatalf("city = %q, want Paris", got)
	}
}

func TestResolveCityFallsBackToUnknown(t *testing.T) {
	coord := domain.Coordinate{Latitude: 0, Longitude: 0}
	cache := newMapCache()
	geocoder := geocode.NewMockGeocoder(nil)

	if got := ResolveCity(context.Background(), coord, cache, geocoder); got != UnknownCity {
		t.Fatalf("city = %q, want %q", got, UnknownCity)
	}

	// Failures are never cached.
	if _, ok := cache.m[coord.CacheKey()]; ok {
		t.Fatal("unknown result must not be cached")
	}
}

func TestResolveCitySurvivesCacheFailure(t *testing.T) {
	coord := domain.Coordinate{Latitude: 35.6762, Longitude: 139.6503}
	geocoder := geocode.NewMockGeocoder(map[domain.Coordinate]string{coord: "Tokyo"})
	cache := newMapCache()
	cache.fail = true

	if got := ResolveCity(context.Background(), coord, cache, geocoder); got != "Tokyo" {
		t.Fatalf("city = %q, want Tokyo", got)
	}
}

func TestResolveCityNilCache(t *testing.T) {
	coord := domain.Coordinate{Latitude: -33.8688, Longitude: 151.2093}
	geocoder := geocode.NewMockGeocoder(map[domain.Coordinate]string{coord: "Sydney"})

	if got := ResolveCity(context.Background(), coord, nil, geocoder); got != "Sydney" {
		t.Fatalf("city = %q, want Sydney", got)
	}
}
