package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"weather-locator/internal/adapters/cache"
	"weather-locator/internal/adapters/geocode"
	"weather-locator/internal/adapters/weather"
	"weather-locator/internal/config"
	"weather-locator/internal/geoserver"
	"weather-locator/internal/handoff"
	"weather-locator/internal/platform/db"
	"weather-locator/internal/platform/obs"
	"weather-locator/internal/ports"
	"weather-locator/internal/report"
	"weather-locator/internal/services"

	"github.com/joho/godotenv"
)

// main is the locate pipeline composition root: browser handshake for the
// coordinate, cache-first reverse geocode for the city, then the weather
// report when an API key is configured.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	host := config.Get("GEO_HOST", config.DefaultHost)
	port := config.GetInt("GEO_PORT", config.DefaultPort)
	timeout := config.GetDuration("HTTP_TIMEOUT", config.DefaultHTTPTimeout)

	ctx := obs.WithRequestID(context.Background())
	store := handoff.NewFileStore(config.HandoffPath())

	coord, err := store.Read()
	switch {
	case err == nil:
		// A record left by a prior run is reused instead of bothering the
		// user with another browser prompt. Read consumed it, so the next
		// run will prompt again.
		log.Printf("reusing previous location lat=%.6f lon=%.6f", coord.Latitude, coord.Longitude)
	case errors.Is(err, handoff.ErrAbsent):
		srv := geoserver.New(host, port, store)
		coord, err = srv.Acquire()
		if errors.Is(err, handoff.ErrAbsent) {
			fmt.Println("Failed to retrieve location.")
			return
		}
		if err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal(err)
	}

	fmt.Printf("Latitude: %.6f\nLongitude: %.6f\n", coord.Latitude, coord.Longitude)

	cityCache, closeCache := openCityCache(ctx)
	defer closeCache()

	geocoder := geocode.NewNominatimClient(
		config.Get("NOMINATIM_BASE_URL", config.DefaultNominatimBaseURL),
		timeout,
	)

	city := services.ResolveCity(ctx, coord, cityCache, geocoder)
	fmt.Printf("City: %s\n", city)

	apiKey := config.APIKey("")
	if apiKey == "" {
		log.Println("OPENWEATHER_API_KEY not set, skipping weather report")
		return
	}
	if city == services.UnknownCity {
		log.Println("city unresolved, skipping weather report")
		return
	}

	provider, err := weather.NewOpenWeatherClient(
		apiKey,
		config.Get("OPENWEATHER_BASE_URL", config.DefaultOpenWeatherBaseURL),
		timeout,
	)
	if err != nil {
		log.Fatal(err)
	}

	rep, err := provider.Report(ctx, city)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	report.Render(os.Stdout, rep)
}

// openCityCache picks the reverse-geocode cache backend: Postgres when
// DATABASE_URL is set, Redis when REDIS_ADDR is set, a local SQLite file
// otherwise. Any open failure degrades to running cache-less.
func openCityCache(ctx context.Context) (ports.CityCache, func()) {
	noop := func() {}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		pg, err := db.OpenPostgres(databaseURL)
		if err != nil {
			log.Printf("warning: postgres cache unavailable: %v", err)
			return nil, noop
		}
		if err := cache.InitSQLSchema(ctx, pg); err != nil {
			log.Printf("warning: postgres cache schema: %v", err)
			pg.Close()
			return nil, noop
		}
		return cache.NewSQLCityCache(pg), func() { pg.Close() }
	}

	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		ttl := config.GetDuration("CACHE_TTL", config.DefaultCacheTTL)
		rc := cache.NewRedisCityCache(redisAddr, ttl)
		return rc, func() { rc.Close() }
	}

	dbPath := config.Get("CACHE_DB_PATH", config.DefaultCacheDBPath)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		log.Printf("warning: sqlite cache dir: %v", err)
		return nil, noop
	}
	sq, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Printf("warning: sqlite cache unavailable: %v", err)
		return nil, noop
	}
	if err := cache.InitSchema(sq); err != nil {
		log.Printf("warning: sqlite cache schema: %v", err)
		sq.Close()
		return nil, noop
	}
	return cache.NewSqliteCityCache(sq), func() { sq.Close() }
}
