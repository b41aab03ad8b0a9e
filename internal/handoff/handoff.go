// Package handoff implements the channel that carries a resolved coordinate
// across the handshake server's blocking lifetime boundary.
//
// The file-backed store survives the writer's own termination; the in-memory
// store is for callers that share a lifetime with the server.
package handoff

import (
	"errors"

	"weather-locator/internal/ports"
)

var (
	_ ports.HandoffStore = (*FileStore)(nil)
	_ ports.HandoffStore = (*MemoryStore)(nil)
)

// ErrAbsent reports that no usable handoff record exists. It covers both a
// missing record and a corrupt one (which is purged on read); callers that
// need diagnostics can inspect the wrapped detail.
var ErrAbsent = errors.New("handoff: no record")
