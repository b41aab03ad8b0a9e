package handoff

import (
	"sync"

	"weather-locator/internal/domain"
)

// MemoryStore is an in-process handoff channel for callers that share a
// lifetime with the handshake server. Same consume-on-read semantics as the
// file store, without the restart-boundary tolerance.
type MemoryStore struct {
	mu    sync.Mutex
	coord domain.Coordinate
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Write(coord domain.Coordinate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coord = coord
	s.set = true
	return nil
}

func (s *MemoryStore) Read() (domain.Coordinate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return domain.Coordinate{}, ErrAbsent
	}
	coord := s.coord
	s.coord = domain.Coordinate{}
	s.set = false
	return coord, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coord = domain.Coordinate{}
	s.set = false
	return nil
}
