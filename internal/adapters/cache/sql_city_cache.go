package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"weather-locator/internal/platform/obs"
)

// SQLCityCache is the Postgres flavor of the reverse-geocode cache, for
// setups that share one cache across machines (DATABASE_URL).
type SQLCityCache struct {
	DB *sql.DB
}

func NewSQLCityCache(db *sql.DB) *SQLCityCache {
	return &SQLCityCache{DB: db}
}

// InitSQLSchema creates the cache table on Postgres if needed.
func InitSQLSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS reverse_geocode_cache (
        coord_key TEXT PRIMARY KEY,
        city TEXT NOT NULL
    );
	`

	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init schema: create reverse_geocode_cache: %w", err)
	}

	return nil
}

func (s *SQLCityCache) Get(ctx context.Context, key string) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "citycache.sql.Get")(&err)

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
    WHERE coord_key = $1;
	`

	var city string
	qerr := s.DB.QueryRowContext(ctx, q, key).Scan(&city)
	if qerr == sql.ErrNoRows {
		return "", false, nil
	}
	if qerr != nil {
		return "", false, fmt.Errorf("get city cache: query reverse_geocode_cache: %w", qerr)
	}

	return city, true, nil
}

func (s *SQLCityCache) Put(ctx context.Context, key, city string) (err error) {
	defer obs.Time(ctx, "citycache.sql.Put")(&err)

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
	INSERT INTO reverse_geocode_cache (coord_key, city)
    VALUES ($1, $2)
	ON CONFLICT (coord_key) DO UPDATE
	SET city = EXCLUDED.city;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, city); err != nil {
		return fmt.Errorf("insert city cache key=%q: %w", key, err)
	}

	return nil
}
