package ports

import (
	"context"

	"weather-locator/internal/domain"
)

// Contract for resolving a coordinate to a human-readable place name.
type ReverseGeocoder interface {
	// Return the city (or nearest equivalent locality) for the coordinate.
	ReverseGeocode(ctx context.Context, coord domain.Coordinate) (string, error)
}
