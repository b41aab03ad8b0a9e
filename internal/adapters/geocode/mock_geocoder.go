package geocode

import (
	"context"
	"fmt"

	"weather-locator/internal/domain"
)

type MockGeocoder struct {
	m map[string]string
}

// NewMockGeocoder maps coordinate cache keys to city names for tests.
func NewMockGeocoder(pairs map[domain.Coordinate]string) *MockGeocoder {
	m := make(map[string]string, len(pairs))
	for coord, city := range pairs {
		m[coord.CacheKey()] = city
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) ReverseGeocode(ctx context.Context, coord domain.Coordinate) (string, error) {
	city, ok := g.m[coord.CacheKey()]
	if !ok {
		return "", fmt.Errorf("no mock city for %s", coord)
	}

	return city, nil
}
