package session

import (
	"sync"
	"time"
)

// gracePolicy implements the post-registration tolerance window: for a
// short period after a successful registration the backend may not yet see
// the session it just created, so a 401 on the identity or set-role call is
// treated as transient instead of session-ending.
//
// This papers over a backend read-after-write race; the observable contract
// (suppress one identity check, retry one role-set call) is what matters,
// not the mechanism. It is kept in one place so it can be deleted once the
// backend's consistency guarantee is fixed.
type gracePolicy struct {
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	armedAt time.Time
}

func newGracePolicy(window time.Duration, now func() time.Time) *gracePolicy {
	if now == nil {
		now = time.Now
	}
	return &gracePolicy{window: window, now: now}
}

// Arm starts (or restarts) the window.
func (g *gracePolicy) Arm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.armedAt = g.now()
}

// Active reports whether the window is still open.
func (g *gracePolicy) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.armedAt.IsZero() {
		return false
	}
	return g.now().Sub(g.armedAt) < g.window
}

// Disarm closes the window early (logout, definitive rejection).
func (g *gracePolicy) Disarm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.armedAt = time.Time{}
}
