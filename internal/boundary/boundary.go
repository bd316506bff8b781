// Package boundary implements the scoped fault wrapper around the results
// region: it captures a failure raised while rendering and holds it until
// explicitly cleared.
package boundary

import "sync"

// Boundary records the first failure from its region. Clear resets it but
// retries nothing: re-reading a still-failed resource recaptures the same
// failure, so the view only recovers once a new successful resource is
// committed.
type Boundary struct {
	mu      sync.Mutex
	failure error
}

// Capture records err unless a failure is already held. Capturing nil is a
// no-op.
func (b *Boundary) Capture(err error) {
	if err == nil {
		return
	}
	b.mu.Lock()
	if b.failure == nil {
		b.failure = err
	}
	b.mu.Unlock()
}

// Failure returns the held failure, or nil when the region is healthy.
func (b *Boundary) Failure() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failure
}

// Clear drops the held failure.
func (b *Boundary) Clear() {
	b.mu.Lock()
	b.failure = nil
	b.mu.Unlock()
}
