package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"weather-locator/internal/ports"
)

var (
	_ ports.CityCache = (*SqliteCityCache)(nil)
	_ ports.CityCache = (*SQLCityCache)(nil)
)

// SQLite backed cache mapping coordinate keys to city names. This is the
// default local cache so repeated runs from the same spot skip the
// reverse-geocode call.
type SqliteCityCache struct {
	DB *sql.DB
}

func NewSqliteCityCache(db *sql.DB) *SqliteCityCache {
	return &SqliteCityCache{DB: db}
}

// InitSchema creates the cache table if needed.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS reverse_geocode_cache (
        coord_key TEXT PRIMARY KEY,
        city TEXT NOT NULL
    );
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create reverse_geocode_cache: %w", err)
	}

	return nil
}

func (s *SqliteCityCache) Get(ctx context.Context, key string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("city cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, errors.New("city cache: empty key")
	}

	q := `
	SELECT city
    FROM reverse_geocode_cache
    WHERE coord_key = ?;
	`

	var city string
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&city)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get city cache: query reverse_geocode_cache: %w", err)
	}

	return city, true, nil
}

func (s *SqliteCityCache) Put(ctx context.Context, key, city string) error {
	if s.DB == nil {
		return errors.New("city cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert city cache: empty key")
	}
	if strings.TrimSpace(city) == "" {
		return errors.New("insert city cache: empty city")
	}

	q := `
	INSERT OR REPLACE INTO reverse_geocode_cache (coord_key, city)
    VALUES (?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, key, city); err != nil {
		return fmt.Errorf("insert city cache key=%q: %w", key, err)
	}

	return nil
}
