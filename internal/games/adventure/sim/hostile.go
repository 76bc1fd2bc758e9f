package sim

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis selects the horizontal axis a hostile patrols along.
type Axis int

const (
	AxisX Axis = iota
	AxisZ
)

// String returns "x" or "z".
func (a Axis) String() string {
	if a == AxisZ {
		return "z"
	}
	return "x"
}

// Hostile is a patrolling enemy. A killed hostile keeps its body but is
// skipped by update and collision from then on.
type Hostile struct {
	Body

	alive   bool
	visible bool
	patrol  bool
	axis    Axis
	speed   float64

	visClock time.Duration
	dirClock time.Duration

	visPeriod time.Duration
	dirPeriod time.Duration
}

// HostileSpec describes a hostile at scene setup.
type HostileSpec struct {
	Position mgl64.Vec3
	Patrol   bool
	Axis     Axis
	Speed    float64
	Hidden   bool // Starts invisible
}

// NewHostile creates a live hostile from spec.
func NewHostile(spec HostileSpec, p Params) *Hostile {
	return &Hostile{
		Body:      NewBody(spec.Position, p.HostileWidth, p.HostileLength, p.HostileHeight),
		alive:     true,
		visible:   !spec.Hidden,
		patrol:    spec.Patrol,
		axis:      spec.Axis,
		speed:     spec.Speed,
		visPeriod: p.VisibilityPeriod,
		dirPeriod: p.DirectionPeriod,
	}
}

// Alive reports whether the hostile has not been killed.
func (h *Hostile) Alive() bool { return h.alive }

// Visible reports whether the hostile is currently shown.
func (h *Hostile) Visible() bool { return h.visible }

// Patrolling reports whether the hostile moves.
func (h *Hostile) Patrolling() bool { return h.patrol }

// Velocity returns the signed patrol speed.
func (h *Hostile) Velocity() float64 { return h.speed }

// Axis returns the patrol axis.
func (h *Hostile) Axis() Axis { return h.axis }

// Active reports whether the hostile takes part in collisions.
func (h *Hostile) Active() bool {
	return h.alive && h.visible
}

// Kill removes the hostile from play permanently.
func (h *Hostile) Kill() {
	h.alive = false
	h.visible = false
}

// Update advances the patrol by dt. Visibility toggles every visibility
// period and the direction flips every direction period; the hostile keeps
// moving while hidden.
func (h *Hostile) Update(dt time.Duration) {
	if !h.alive || !h.patrol {
		return
	}

	h.visClock += dt
	if h.visPeriod > 0 && h.visClock >= h.visPeriod {
		h.visClock -= h.visPeriod
		h.visible = !h.visible
	}

	h.dirClock += dt
	if h.dirPeriod > 0 && h.dirClock >= h.dirPeriod {
		h.dirClock -= h.dirPeriod
		h.speed = -h.speed
	}

	pos := h.Position()
	step := h.speed * dt.Seconds()
	if h.axis == AxisZ {
		pos[2] += step
	} else {
		pos[0] += step
	}
	h.SetPosition(pos)
}
