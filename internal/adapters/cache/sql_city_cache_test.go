package cache

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

// SQLite accepts the $N placeholders and the ON CONFLICT ... EXCLUDED upsert
// the Postgres flavor uses, so its Get/Put/schema paths run against the
// in-process database without a live Postgres.
func newSQLCache(t *testing.T) *SQLCityCache {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "geocache.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSQLSchema(context.Background(), db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return NewSQLCityCache(db)
}

func TestSQLCityCacheRoundTrip(t *testing.T) {
	c := newSQLCache(t)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "19.0760,72.8777"); err != nil || ok {
		t.Fatalf("empty get: ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Put(ctx, "19.0760,72.8777", "Mumbai"); err != nil {
		t.Fatalf("put: %v", err)
	}

	city, ok, err := c.Get(ctx, "19.0760,72.8777")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || city != "Mumbai" {
		t.Fatalf("got (%q, %v), want (Mumbai, true)", city, ok)
	}
}

func TestSQLCityCacheUpsert(t *testing.T) {
	c := newSQLCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "48.8566,2.3522", "Paris"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.Put(ctx, "48.8566,2.3522", "Paris 1er"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	city, ok, err := c.Get(ctx, "48.8566,2.3522")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if city != "Paris 1er" {
		t.Fatalf("city = %q, want Paris 1er", city)
	}
}

func TestSQLCityCacheRejectsEmptyValues(t *testing.T) {
	c := newSQLCache(t)
	ctx := context.Background()

	if _, _, err := c.Get(ctx, "  "); err == nil {
		t.Fatal("expected error for empty key")
	}
	if err := c.Put(ctx, "", "Paris"); err == nil {
		t.Fatal("expected error for empty key")
	}
	if err := c.Put(ctx, "48.8566,2.3522", ""); err == nil {
		t.Fatal("expected error for empty city")
	}
}

func TestSQLCityCacheNilDB(t *testing.T) {
	c := NewSQLCityCache(nil)
	ctx := context.Background()

	if _, _, err := c.Get(ctx, "1.0000,2.0000"); err == nil {
		t.Fatal("expected error for nil db")
	}
	if err := c.Put(ctx, "1.0000,2.0000", "Somewhere"); err == nil {
		t.Fatal("expected error for nil db")
	}
}
