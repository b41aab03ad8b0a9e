package services

import (
	"context"
	"log"

	"weather-locator/internal/domain"
	"weather-locator/internal/ports"
)

// UnknownCity is the fallback when a coordinate cannot be resolved. Geocoding
// is an optional enrichment, so lookup failures degrade instead of
// propagating.
const UnknownCity = "Unknown"

// ResolveCity resolves a coordinate to a city name, cache first.
//
// A cache failure falls through to the geocoder; a geocoder failure yields
// UnknownCity. Successful results are written back to the cache, but never
// UnknownCity (a transient failure must not poison future lookups). cache
// may be nil for cache-less resolution.
func ResolveCity(
	ctx context.Context,
	coord domain.Coordinate,
	cache ports.CityCache,
	geocoder ports.ReverseGeocoder,
) string {
	key := coord.CacheKey()

	if cache != nil {
		city, ok, err := cache.Get(ctx, key)
		if err != nil {
			log.Printf("city cache read failed: %v", err)
		} else if ok {
			return city
		}
	}

	city, err := geocoder.ReverseGeocode(ctx, coord)
	if err != nil {
		log.Printf("reverse geocode failed coord=%s err=%v", coord, err)
		return UnknownCity
	}

	if cache != nil {
		if err := cache.Put(ctx, key, city); err != nil {
			log.Printf("city cache write failed: %v", err)
		}
	}

	return city
}
