package ports

import "context"

// Port: a boundary for caching reverse-geocode results.
// Keys are produced by domain.Coordinate.CacheKey.
type CityCache interface {
	// Fetch a cached city for the key; ok reports whether it was present.
	Get(ctx context.Context, key string) (city string, ok bool, err error)
	// Store a key -> city mapping.
	Put(ctx context.Context, key string, city string) error
}
