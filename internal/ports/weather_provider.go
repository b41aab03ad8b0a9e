package ports

import (
	"context"

	"weather-locator/internal/domain"
)

// Contract for retrieving current conditions and a rain estimate for a city.
type WeatherProvider interface {
	// Return the weather report for the named city.
	Report(ctx context.Context, city string) (domain.WeatherReport, error)
}
