package sim

import "github.com/go-gl/mathgl/mgl64"

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventHostileHit EventKind = iota
	EventBonusCollected
	EventHostileKilled
	EventFellOff
	EventFired
	EventLanded
	EventWon
	EventLost
)

// String returns the event name as stored in the journal.
func (k EventKind) String() string {
	switch k {
	case EventHostileHit:
		return "hostile_hit"
	case EventBonusCollected:
		return "bonus_collected"
	case EventHostileKilled:
		return "hostile_killed"
	case EventFellOff:
		return "fell_off"
	case EventFired:
		return "fired"
	case EventLanded:
		return "landed"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is one occurrence reported by World.Tick.
// Index is the hostile, bonus or tile involved, or -1.
type Event struct {
	Tick     uint64
	Kind     EventKind
	Index    int
	Position mgl64.Vec3
}
