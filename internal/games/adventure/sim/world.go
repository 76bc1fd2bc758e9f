package sim

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Setup is the initial layout of a world.
type Setup struct {
	Grid     *Grid
	Spawn    mgl64.Vec3
	Hostiles []HostileSpec
	Bonuses  []mgl64.Vec3
	Goal     mgl64.Vec3
}

// World owns every entity and the session counters of one play session.
type World struct {
	Params Params

	Grid       *Grid
	Player     *Player
	Hostiles   []*Hostile
	Bonuses    []*Bonus
	Projectile *Projectile
	Goal       *Goal
	Session    Session

	tick     uint64
	elapsed  time.Duration
	resolver Resolver
	scene    Scene
	pending  []Event
}

// NewWorld builds a world from setup. The playfield extends PlayfieldMargin
// beyond the grid on every side.
func NewWorld(p Params, setup Setup) *World {
	grid := setup.Grid
	if grid == nil {
		grid = NewGrid(1, 1, p)
	}
	ex, ez := grid.Extent()
	field := Playfield{
		MinX: -p.PlayfieldMargin,
		MaxX: ex + p.PlayfieldMargin,
		MinZ: -p.PlayfieldMargin,
		MaxZ: ez + p.PlayfieldMargin,
	}

	w := &World{
		Params:     p,
		Grid:       grid,
		Player:     NewPlayer(setup.Spawn, field, p),
		Projectile: NewProjectile(p),
		Goal:       NewGoal(setup.Goal, p.GoalSize),
		Session:    Session{Lives: p.Lives},
		resolver:   Resolver{SnapBand: p.SnapBand},
	}
	for _, hs := range setup.Hostiles {
		if hs.Speed == 0 {
			hs.Speed = p.HostileSpeed
		}
		w.Hostiles = append(w.Hostiles, NewHostile(hs, p))
	}
	for _, pos := range setup.Bonuses {
		w.Bonuses = append(w.Bonuses, NewBonus(pos, p.BonusSize))
	}

	w.scene = Scene{
		Grid:   w.Grid,
		Player: w.Player,
		Shot:   w.Projectile,
		Goal:   w.Goal,
	}
	for _, h := range w.Hostiles {
		w.scene.Hostiles = append(w.scene.Hostiles, h)
	}
	for _, b := range w.Bonuses {
		w.scene.Bonuses = append(w.scene.Bonuses, b)
	}
	return w
}

// Ticks returns the number of ticks executed.
func (w *World) Ticks() uint64 { return w.tick }

// Elapsed returns the simulated time.
func (w *World) Elapsed() time.Duration { return w.elapsed }

// Over reports whether the session has ended.
func (w *World) Over() bool { return w.Session.Over() }

// StartMove forwards a move intent to the player.
func (w *World) StartMove(d Direction) { w.Player.StartMove(d) }

// StopMove forwards a stop intent to the player.
func (w *World) StopMove(d Direction) { w.Player.StopMove(d) }

// StopAll clears every move intent.
func (w *World) StopAll() { w.Player.StopAll() }

// Jump asks the player to jump.
func (w *World) Jump() bool { return w.Player.Jump() }

// RotateAim turns the player's aim by one step.
func (w *World) RotateAim(sign int) { w.Player.RotateAim(sign) }

// ChangeSpeed adjusts the player's horizontal speed by one step.
func (w *World) ChangeSpeed(sign int) { w.Player.ChangeSpeed(sign) }

// Fire launches the projectile from the player's head anchor. The Fired
// event is reported with the next tick.
func (w *World) Fire() bool {
	if w.Over() {
		return false
	}
	origin := w.Player.Anchor()
	if !w.Projectile.Fire(origin, w.Player) {
		return false
	}
	w.pending = append(w.pending, Event{Kind: EventFired, Index: -1, Position: origin})
	return true
}

// Tick advances the world by one quantum and returns what happened.
// A finished session no longer changes.
//
// Order: sliders, hostiles, player, projectile, collision resolution.
func (w *World) Tick() []Event {
	if w.Over() {
		return nil
	}

	w.tick++
	w.elapsed += w.Params.Quantum
	dt := w.Params.Quantum

	events := w.pending
	w.pending = nil
	for i := range events {
		events[i].Tick = w.tick
	}

	w.Grid.Slide()

	for _, h := range w.Hostiles {
		h.Update(dt)
	}

	pu := w.Player.Update(dt, w.Grid)
	if pu.Landed {
		events = w.emit(events, EventLanded, w.Player.RideIndex(), w.Player.Position())
	}
	if pu.Respawned {
		events = w.emit(events, EventFellOff, -1, w.Player.Position())
	}
	if pu.Fatal {
		w.Session.Lost = true
	}

	w.Projectile.Update(dt, w.Player)

	res := w.resolver.Resolve(w.scene, &w.Session)
	for _, i := range res.Hits {
		events = w.emit(events, EventHostileHit, i, w.Hostiles[i].Position())
	}
	for _, i := range res.Collected {
		events = w.emit(events, EventBonusCollected, i, w.Bonuses[i].Position())
	}
	for _, i := range res.Killed {
		events = w.emit(events, EventHostileKilled, i, w.Hostiles[i].Position())
	}
	if res.Won {
		events = w.emit(events, EventWon, -1, w.Player.Position())
	}
	if w.Session.Lost {
		events = w.emit(events, EventLost, -1, w.Player.Position())
	}

	return events
}

func (w *World) emit(events []Event, kind EventKind, index int, pos mgl64.Vec3) []Event {
	return append(events, Event{Tick: w.tick, Kind: kind, Index: index, Position: pos})
}
