package sim

import "time"

// Gate throttles ticks against wall-clock time. Ready returns true once at
// least one quantum has passed since the last accepted tick; time beyond that
// is dropped, not carried over.
type Gate struct {
	quantum time.Duration
	last    time.Time
	armed   bool
}

// NewGate creates a gate for the given quantum.
func NewGate(quantum time.Duration) *Gate {
	return &Gate{quantum: quantum}
}

// Quantum returns the tick interval.
func (g *Gate) Quantum() time.Duration {
	return g.quantum
}

// Reset starts counting from now.
func (g *Gate) Reset(now time.Time) {
	g.last = now
	g.armed = true
}

// Ready reports whether a tick is due at now and, if so, re-arms the gate at
// now. The first call only starts the clock.
func (g *Gate) Ready(now time.Time) bool {
	if !g.armed {
		g.Reset(now)
		return false
	}
	if now.Sub(g.last) < g.quantum {
		return false
	}
	g.last = now
	return true
}
