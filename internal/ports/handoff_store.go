package ports

import "weather-locator/internal/domain"

// Port: the handoff channel that moves a resolved coordinate across the
// handshake server's blocking lifetime boundary.
//
// At most one record exists at a time. Read consumes: the record is removed
// whether or not its contents were valid, so a corrupt record is never left
// behind.
type HandoffStore interface {
	// Persist the coordinate as the single handoff record.
	Write(coord domain.Coordinate) error
	// Consume and return the record. Returns an error matching
	// handoff.ErrAbsent when no record exists or its contents are invalid.
	Read() (domain.Coordinate, error)
	// Remove any existing record. Removing a missing record is not an error.
	Clear() error
}
