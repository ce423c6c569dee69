// Package resumption implements the resume-token-addressed position store
// RSocket's RESUME mechanism needs after a connection drop: given the
// token a SETUP frame carried, remember how much of each stream the peer
// has acknowledged so a reconnect can replay only what's missing.
//
// Grounded on the teacher's registry package, which used an etcd
// lease-backed key for service discovery heartbeats; the same
// TTL-lease pattern is repurposed here to expire abandoned resume state
// instead of dead service instances.
package resumption

import "context"

// Position records how far a resumable session has progressed in each
// direction, matching the KEEPALIVE frame's lastReceivedPosition and the
// RESUME_OK frame's analogous fields in the full RSocket resume protocol.
type Position struct {
	ClientPosition uint64
	ServerPosition uint64
}

// Store persists resume positions keyed by the SETUP frame's resume
// token. Implementations must be safe for concurrent use.
type Store interface {
	// Save records pos for token, refreshing its expiry.
	Save(ctx context.Context, token string, pos Position) error
	// Load returns the last saved position for token. ok is false if no
	// entry exists or it has expired.
	Load(ctx context.Context, token string) (pos Position, ok bool, err error)
	// Delete removes any stored position for token.
	Delete(ctx context.Context, token string) error
	// Close releases resources held by the store.
	Close() error
}
