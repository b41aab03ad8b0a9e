package domain

import "fmt"

// Coordinate is a geographic position in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// CacheKey returns a stable lookup key for reverse-geocode caching.
// Coordinates are rounded to 4 decimal places (~11 m), which is well within
// city resolution.
func (c Coordinate) CacheKey() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Latitude, c.Longitude)
}
