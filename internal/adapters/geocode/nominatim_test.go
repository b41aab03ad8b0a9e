package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"weather-locator/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *NominatimClient {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	return NewNominatimClient(ts.URL, 2*time.Second)
}

func TestReverseGeocodeCity(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("path = %q, want /reverse", r.URL.Path)
		}
		if got := r.Header.Get("User-Agent"); got == "" {
			t.Error("missing User-Agent header")
		}
		if got := r.URL.Query().Get("zoom"); got != "10" {
			t.Errorf("zoom = %q, want 10", got)
		}
		w.Write([]byte(`{"address":{"city":"Mumbai","state":"Maharashtra"}}`))
	})

	city, err := c.ReverseGeocode(context.Background(), domain.Coordinate{Latitude: 19.07, Longitude: 72.87})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if city != "Mumbai" {
		t.Fatalf("city = %q, want Mumbai", city)
	}
}

func TestReverseGeocodeFallbackChain(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"town", `{"address":{"town":"Windsor","state":"England"}}`, "Windsor"},
		{"village", `{"address":{"village":"Grindelwald"}}`, "Grindelwald"},
		{"state", `{"address":{"state":"Wyoming"}}`, "Wyoming"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})

			city, err := c.ReverseGeocode(context.Background(), domain.Coordinate{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if city != tc.want {
				t.Fatalf("city = %q, want %q", city, tc.want)
			}
		})
	}
}

func TestReverseGeocodeNoLocality(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{}}`))
	})

	if _, err := c.ReverseGeocode(context.Background(), domain.Coordinate{}); err == nil {
		t.Fatal("expected error when no locality resolves")
	}
}

func TestReverseGeocodeRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"address":{"city":"Lisbon"}}`))
	})

	city, err := c.ReverseGeocode(context.Background(), domain.Coordinate{Latitude: 38.72, Longitude: -9.14})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if city != "Lisbon" {
		t.Fatalf("city = %q, want Lisbon", city)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("calls = %d, want 2", got)
	}
}

func TestReverseGeocodeGivesUpOnClientError(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	})

	if _, err := c.ReverseGeocode(context.Background(), domain.Coordinate{}); err == nil {
		t.Fatal("expected error")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1 (4xx is not retried)", got)
	}
}
