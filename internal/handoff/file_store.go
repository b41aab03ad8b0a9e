package handoff

import (
	"encoding/json"
	"fmt"
	"os"

	"weather-locator/internal/domain"
)

// record is the wire form of the handoff file. Pointer fields distinguish a
// present-but-null key from a missing one.
type record struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// FileStore persists the handoff record as a small JSON file at a well-known
// transient path. Access is single-writer, single-reader and strictly
// sequential, so a plain write-then-close is atomic enough; an external actor
// deleting the file between write and read is treated as absence.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Write replaces any existing record with the coordinate.
func (s *FileStore) Write(coord domain.Coordinate) error {
	rec := record{Latitude: &coord.Latitude, Longitude: &coord.Longitude}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("handoff write: marshal record: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0o600); err != nil {
		return fmt.Errorf("handoff write: write %q: %w", s.Path, err)
	}

	return nil
}

// Read consumes the record. The file is removed before the contents are
// judged, so a corrupt record can never be observed twice.
func (s *FileStore) Read() (domain.Coordinate, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Coordinate{}, ErrAbsent
		}
		return domain.Coordinate{}, fmt.Errorf("%w: read %q: %v", ErrAbsent, s.Path, err)
	}

	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return domain.Coordinate{}, fmt.Errorf("handoff read: remove %q: %w", s.Path, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: malformed record: %v", ErrAbsent, err)
	}
	if rec.Latitude == nil || rec.Longitude == nil {
		return domain.Coordinate{}, fmt.Errorf("%w: incomplete record", ErrAbsent)
	}

	return domain.Coordinate{Latitude: *rec.Latitude, Longitude: *rec.Longitude}, nil
}

// Clear removes any existing record, e.g. a leftover from a crashed run.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("handoff clear: remove %q: %w", s.Path, err)
	}
	return nil
}
