// Package config centralizes environment-sourced settings.
// Every recognized option has a documented default; nothing is hardcoded at
// call sites.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Recognized environment variables and their defaults.
const (
	// Handshake server bind address. The port is fixed per deployment:
	// a busy port is a fatal error, not a reason to hunt for another.
	DefaultHost = "127.0.0.1"
	DefaultPort = 8000

	// Transient handoff record location (under the OS temp dir).
	DefaultHandoffFile = "location_handoff.json"

	// External API endpoints.
	DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultNominatimBaseURL   = "https://nominatim.openstreetmap.org"

	// Outbound HTTP budget for weather/geocode calls.
	DefaultHTTPTimeout = 6 * time.Second

	// Local reverse-geocode cache.
	DefaultCacheDBPath = "data/geocache.db"
	DefaultCacheTTL    = 30 * 24 * time.Hour
)

// Get returns the env value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt returns the env value parsed as int, or fallback on absence or
// parse failure.
func GetInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// GetDuration returns the env value parsed as a time.Duration, or fallback
// on absence or parse failure.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// HandoffPath returns the configured handoff record path, defaulting to a
// well-known file under the OS temp dir so a reader can outlive the writer.
func HandoffPath() string {
	if v := os.Getenv("GEO_HANDOFF_PATH"); v != "" {
		return v
	}
	return filepath.Join(os.TempDir(), DefaultHandoffFile)
}

// APIKey returns the OpenWeatherMap key, preferring the explicit value over
// the environment.
func APIKey(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv("OPENWEATHER_API_KEY")
}
