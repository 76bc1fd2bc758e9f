package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"time"
)

// PlayerView is the rendered pose of the player.
type PlayerView struct {
	Position    [3]float64
	Anchor      [3]float64
	State       MoveState
	Facing      Direction
	AimAngle    float64
	FiringAngle float64
	Speed       float64
	Ride        int
}

// HostileView is the rendered state of one hostile.
type HostileView struct {
	Position [3]float64
	Alive    bool
	Visible  bool
}

// BonusView is the rendered state of one bonus.
type BonusView struct {
	Position [3]float64
	Visible  bool
}

// ProjectileView is the rendered state of the projectile.
type ProjectileView struct {
	Position [3]float64
	Visible  bool
}

// TileView is the rendered state of one grid cell.
type TileView struct {
	Row, Col int
	Visible  bool
	Empty    bool
	Sliding  bool
	Offset   float64
}

// Snapshot is a read-only copy of the world between ticks.
// It holds primitive values only.
type Snapshot struct {
	Tick    uint64
	Elapsed time.Duration

	Score int
	Lives int
	Won   bool
	Lost  bool

	Rows, Cols int
	TileW      float64
	TileL      float64

	Player     PlayerView
	Hostiles   []HostileView
	Bonuses    []BonusView
	Projectile ProjectileView
	Tiles      []TileView
	Goal       [3]float64
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	pl := w.Player
	snap := Snapshot{
		Tick:    w.tick,
		Elapsed: w.elapsed,
		Score:   w.Session.Score,
		Lives:   w.Session.Lives,
		Won:     w.Session.Won,
		Lost:    w.Session.Lost,
		Rows:    w.Grid.Rows,
		Cols:    w.Grid.Cols,
		TileW:   w.Grid.TileW,
		TileL:   w.Grid.TileL,
		Player: PlayerView{
			Position:    pl.Position(),
			Anchor:      pl.Anchor(),
			State:       pl.State(),
			Facing:      pl.Facing(),
			AimAngle:    pl.AimAngle(),
			FiringAngle: pl.FiringAngle(),
			Speed:       pl.Speed(),
			Ride:        pl.RideIndex(),
		},
		Projectile: ProjectileView{
			Position: w.Projectile.Position(),
			Visible:  w.Projectile.InFlight(),
		},
		Goal:     w.Goal.Position(),
		Hostiles: make([]HostileView, len(w.Hostiles)),
		Bonuses:  make([]BonusView, len(w.Bonuses)),
		Tiles:    make([]TileView, len(w.Grid.Cells)),
	}
	for i, h := range w.Hostiles {
		snap.Hostiles[i] = HostileView{Position: h.Position(), Alive: h.Alive(), Visible: h.Visible()}
	}
	for i, b := range w.Bonuses {
		snap.Bonuses[i] = BonusView{Position: b.Position(), Visible: b.Available()}
	}
	for i, c := range w.Grid.Cells {
		snap.Tiles[i] = TileView{
			Row:     c.Row,
			Col:     c.Col,
			Visible: c.Visible,
			Empty:   c.Empty,
			Sliding: c.Sliding,
			Offset:  c.Offset,
		}
	}
	return snap
}

// Hash returns a digest of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	u := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	i := func(v int) { u(uint64(v)) } //#nosec G115 -- hash computation
	f := func(v float64) { u(math.Float64bits(v)) }
	b := func(v bool) {
		if v {
			u(1)
		} else {
			u(0)
		}
	}
	vec := func(v [3]float64) {
		for _, c := range v {
			f(c)
		}
	}

	u(s.Tick)
	i(int(s.Elapsed))
	i(s.Score)
	i(s.Lives)
	b(s.Won)
	b(s.Lost)

	vec(s.Player.Position)
	vec(s.Player.Anchor)
	i(int(s.Player.State))
	i(int(s.Player.Facing))
	f(s.Player.AimAngle)
	f(s.Player.Speed)
	i(s.Player.Ride)

	for _, hv := range s.Hostiles {
		vec(hv.Position)
		b(hv.Alive)
		b(hv.Visible)
	}
	for _, bv := range s.Bonuses {
		vec(bv.Position)
		b(bv.Visible)
	}
	vec(s.Projectile.Position)
	b(s.Projectile.Visible)
	for _, tv := range s.Tiles {
		b(tv.Empty)
		b(tv.Sliding)
		f(tv.Offset)
	}
	vec(s.Goal)

	return h.Sum64()
}
