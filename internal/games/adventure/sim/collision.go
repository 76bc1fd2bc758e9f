package sim

import (
	"math"

	"github.com/vovakirdan/adventure-land/internal/core"
)

// Collider is anything with a volume.
type Collider interface {
	Bounds() core.Box
}

// Respawner can be sent back to its spawn point.
type Respawner interface {
	Collider
	Respawn()
}

// Rider can be carried by a moving tile.
type Rider interface {
	Collider
	Airborne() bool
	SupportIndex(g *Grid) int
	Board(idx int, g *Grid)
}

// Avatar is the player as seen by the resolver.
type Avatar interface {
	Respawner
	Rider
}

// Killable takes part in collisions while Active and can be removed by a hit.
type Killable interface {
	Collider
	Active() bool
	Kill()
}

// Collectible scores once.
type Collectible interface {
	Collider
	Available() bool
	Collect()
}

// Shot is a projectile that can be spent on a hit.
type Shot interface {
	Collider
	InFlight() bool
	Deactivate()
}

// Session holds the counters and terminal flags of one play session.
type Session struct {
	Score int
	Lives int
	Won   bool
	Lost  bool
}

// Over reports whether a terminal flag is set.
func (s Session) Over() bool {
	return s.Won || s.Lost
}

// Scene is the set of entities the resolver checks against each other.
type Scene struct {
	Grid     *Grid
	Player   Avatar
	Hostiles []Killable
	Bonuses  []Collectible
	Shot     Shot
	Goal     Collider
}

// Resolution lists what the resolver changed, by entity index.
type Resolution struct {
	Snapped   int // Slider the player was clamped onto, or OffGrid
	Hits      []int
	Collected []int
	Killed    []int
	Won       bool
	Lost      bool
}

// Resolver applies collision effects in a fixed order.
type Resolver struct {
	SnapBand float64
}

// Resolve runs one collision pass over scene and updates s.
//
// Order:
//  1. board a grounded player onto the slider under it within the snap band
//  2. every active hostile touching the player costs a life and a respawn
//  3. every available bonus touching the player scores once
//  4. the shot kills every active hostile it touches, then is spent
//  5. touching the goal wins
//  6. lives below zero loses
func (r Resolver) Resolve(scene Scene, s *Session) Resolution {
	res := Resolution{Snapped: OffGrid}
	player := scene.Player

	if player != nil && scene.Grid != nil && !player.Airborne() {
		res.Snapped = r.clampToSlider(scene.Grid, player)
	}

	if player != nil {
		start := player.Bounds()
		for i, h := range scene.Hostiles {
			if h.Active() && h.Bounds().Intersects(start) {
				player.Respawn()
				s.Lives--
				res.Hits = append(res.Hits, i)
			}
		}

		for i, b := range scene.Bonuses {
			if b.Available() && b.Bounds().Intersects(player.Bounds()) {
				b.Collect()
				s.Score++
				res.Collected = append(res.Collected, i)
			}
		}
	}

	if shot := scene.Shot; shot != nil && shot.InFlight() {
		for i, h := range scene.Hostiles {
			if h.Active() && h.Bounds().Intersects(shot.Bounds()) {
				h.Kill()
				res.Killed = append(res.Killed, i)
			}
		}
		if len(res.Killed) > 0 {
			shot.Deactivate()
		}
	}

	if player != nil && scene.Goal != nil && scene.Goal.Bounds().Intersects(player.Bounds()) {
		s.Won = true
		res.Won = true
	}

	if s.Lives < 0 {
		s.Lost = true
		res.Lost = true
	}

	return res
}

// clampToSlider boards the player onto the sliding tile supporting it when
// its feet are within the snap band of the surface. Neighbouring sliders
// that merely overlap the player's box are ignored.
func (r Resolver) clampToSlider(g *Grid, player Rider) int {
	idx := player.SupportIndex(g)
	c := g.Cell(idx)
	if c == nil || !c.Sliding || !c.Solid() {
		return OffGrid
	}
	tile := g.TileBox(idx)
	box := player.Bounds()
	if !tile.Intersects(box) || math.Abs(box.Bottom()-tile.Top()) > r.SnapBand {
		return OffGrid
	}
	player.Board(idx, g)
	return idx
}
