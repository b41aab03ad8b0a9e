// Package geoserver implements the single-use loopback HTTP handshake that
// bridges a browser's geolocation capability to the local process.
//
// Lifecycle: IDLE -> LISTENING -> SHUTTING_DOWN -> STOPPED. A GET serves the
// bootstrap page and an invalid POST leaves the server listening; only a
// valid coordinate callback transitions out of LISTENING, and STOPPED is
// terminal (a Server is not reusable).
package geoserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"weather-locator/internal/domain"
	"weather-locator/internal/ports"
)

// CallbackPath is the fixed path the bootstrap page posts coordinates to.
const CallbackPath = "/location_data"

// Callback payloads are tiny; anything larger is a malformed client.
const maxCallbackBytes = 4 << 10

const shutdownGrace = 5 * time.Second

// Server is the geolocation handshake server. It owns no global state: the
// handoff store and the shutdown signal are injected at construction and the
// request handler only reaches the listener through them.
type Server struct {
	addr  string
	store ports.HandoffStore

	done     chan struct{}
	stopOnce sync.Once

	mu    sync.Mutex
	bound string
}

// New returns a server that will bind host:port and persist the callback
// coordinate through store.
func New(host string, port int, store ports.HandoffStore) *Server {
	return &Server{
		addr:  fmt.Sprintf("%s:%d", host, port),
		store: store,
		done:  make(chan struct{}),
	}
}

// Acquire runs the handshake to completion and returns the coordinate posted
// by the browser.
//
// It purges any stale handoff record, binds the listener (a busy port is
// fatal and propagates), serves until a valid callback has been stored and
// answered, then reads back and consumes the record. The call blocks with no
// deadline: if the browser never calls back it never returns, which is a
// documented limitation of the handshake. The listener is released on every
// exit path. Absence of a result is reported as handoff.ErrAbsent.
func (s *Server) Acquire() (domain.Coordinate, error) {
	// A leftover record from a crashed run must not be observable as a
	// fresh result.
	if err := s.store.Clear(); err != nil {
		return domain.Coordinate{}, fmt.Errorf("acquire location: purge stale record: %w", err)
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("acquire location: bind %s: %w", s.addr, err)
	}
	defer ln.Close()

	s.mu.Lock()
	s.bound = ln.Addr().String()
	s.mu.Unlock()

	log.Printf("geoserver: listening url=http://%s (open in a browser and allow location access)", s.bound)

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()

	select {
	case <-s.done:
		// The record is already on disk and the 200 has been written.
		// Shutdown drains the in-flight response instead of cutting it off.
		ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("geoserver: shutdown err=%v", err)
		}
		<-serveErr
	case err := <-serveErr:
		if err != nil && err != http.ErrServerClosed {
			return domain.Coordinate{}, fmt.Errorf("acquire location: serve: %w", err)
		}
	}

	return s.store.Read()
}

// Addr returns the bound listen address, or "" before Acquire has bound it.
// With a configured port of 0 this is how tests learn the real port.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bound
}

// Handler exposes the handshake routes, wrapped in request logging.
// Exported so handler behavior can be exercised through httptest without a
// full Acquire cycle.
func (s *Server) Handler() http.Handler {
	return loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			// Any GET path serves the bootstrap page.
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte(bootstrapPage)); err != nil {
				log.Printf("geoserver: write page err=%v", err)
			}
		case r.Method == http.MethodPost && r.URL.Path == CallbackPath:
			s.handleCallback(w, r)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

type callbackPayload struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// handleCallback validates the posted coordinates. Any parse or validation
// failure answers 500 with no body and leaves the server listening; only a
// stored, acknowledged coordinate requests shutdown.
func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCallbackBytes))
	if err != nil {
		log.Printf("geoserver: read callback body err=%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var payload callbackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("geoserver: malformed callback err=%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if payload.Latitude == nil || payload.Longitude == nil {
		log.Printf("geoserver: incomplete callback body=%q", body)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	coord := domain.Coordinate{Latitude: *payload.Latitude, Longitude: *payload.Longitude}

	// Ordering contract: record first, then the acknowledgement, then the
	// shutdown request. The blocking Acquire cannot observe Absent after a
	// successful callback.
	if err := s.store.Write(coord); err != nil {
		log.Printf("geoserver: store record err=%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"success"}`)); err != nil {
		log.Printf("geoserver: write ack err=%v", err)
	}

	log.Printf("geoserver: coordinate received lat=%.6f lon=%.6f", coord.Latitude, coord.Longitude)
	s.stopOnce.Do(func() { close(s.done) })
}
