package sim

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

// standingPlayer returns a 5x5 grid and a grounded player resting on the
// center of tile (0, 0).
func standingPlayer(t *testing.T) (*Grid, *Player, Params) {
	t.Helper()
	p := DefaultParams()
	g := NewGrid(5, 5, p)
	spawn := mgl64.Vec3{2.5, g.GroundLevel() + p.PlayerHeight/2, 2.5}
	field := Playfield{MinX: -5, MaxX: 30, MinZ: -5, MaxZ: 30}
	return g, NewPlayer(spawn, field, p), p
}

func ticks(n int, q time.Duration) time.Duration {
	return time.Duration(n) * q
}

func TestJumpArc(t *testing.T) {
	g, pl, p := standingPlayer(t)
	y0 := pl.Position().Y()

	if !pl.Jump() {
		t.Fatal("Jump from grounded should succeed")
	}
	if pl.Jump() {
		t.Error("Jump while airborne should be ignored")
	}

	ys := make([]float64, 0, 12)
	for n := 1; n <= 11; n++ {
		u := pl.Update(p.Quantum, g)
		if u.Landed {
			t.Fatalf("landed early at tick %d", n)
		}
		if pl.State() != Jumping {
			t.Fatalf("tick %d: state = %v, expected jumping", n, pl.State())
		}
		tt := ticks(n, p.Quantum).Seconds()
		want := y0 + 6*tt - 10*tt*tt
		if got := pl.Position().Y(); math.Abs(got-want) > eps {
			t.Fatalf("tick %d: y = %v, expected %v", n, got, want)
		}
		ys = append(ys, pl.Position().Y())
	}

	// Rising until t = 0.3s (tick 6), falling after
	for i := 1; i < 6; i++ {
		if ys[i] <= ys[i-1] {
			t.Errorf("expected rise between ticks %d and %d", i, i+1)
		}
	}
	for i := 6; i < len(ys); i++ {
		if ys[i] >= ys[i-1] {
			t.Errorf("expected descent between ticks %d and %d", i, i+1)
		}
	}

	// The arc returns to y0 at t = 0.6s; the tile catches the player there
	// or one tick later, depending on rounding at the contact point.
	tt := ticks(12, p.Quantum).Seconds()
	if back := y0 + 6*tt - 10*tt*tt; math.Abs(back-y0) > eps {
		t.Errorf("arc at 0.6s = %v, expected %v", back, y0)
	}
	var u PlayerUpdate
	for n := 12; n <= 13 && !u.Landed; n++ {
		u = pl.Update(p.Quantum, g)
	}
	if !u.Landed || u.Fatal {
		t.Errorf("update = %+v, expected a safe landing", u)
	}
	if pl.State() != Grounded {
		t.Errorf("state = %v, expected grounded", pl.State())
	}
	if got := pl.Position().Y(); math.Abs(got-y0) > eps {
		t.Errorf("landed at y = %v, expected %v", got, y0)
	}
}

func TestGroundedFallsIntoHollowTile(t *testing.T) {
	g, pl, p := standingPlayer(t)
	y0 := pl.Position().Y()
	g.SetEmpty(0, true)

	pl.Update(p.Quantum, g)
	if pl.State() != FreeFalling {
		t.Fatalf("state = %v, expected falling", pl.State())
	}
	if pl.Position().Y() >= y0 {
		t.Errorf("y = %v, expected below %v", pl.Position().Y(), y0)
	}
}

func TestGroundedFallsIntoWater(t *testing.T) {
	g, pl, p := standingPlayer(t)
	pl.SetPosition(mgl64.Vec3{-3, pl.Position().Y(), 2.5})

	pl.Update(p.Quantum, g)
	if pl.State() != FreeFalling {
		t.Errorf("state = %v, expected falling off the grid", pl.State())
	}
}

func TestFallTimeoutRespawns(t *testing.T) {
	g, pl, p := standingPlayer(t)
	g.SetEmpty(0, true)

	for n := 1; n <= 26; n++ {
		u := pl.Update(p.Quantum, g)
		if u.Respawned {
			t.Fatalf("respawned early at tick %d", n)
		}
		if pl.State() != FreeFalling {
			t.Fatalf("tick %d: state = %v, expected falling", n, pl.State())
		}
	}

	u := pl.Update(p.Quantum, g)
	if !u.Respawned {
		t.Fatal("expected respawn after the fall timeout")
	}
	if !u.Fatal {
		t.Error("a drop past the fatal height should be reported")
	}
	if pl.State() != Grounded {
		t.Errorf("state = %v, expected grounded", pl.State())
	}
	if pl.Position() != pl.Spawn() {
		t.Errorf("position = %v, expected spawn %v", pl.Position(), pl.Spawn())
	}
}

func TestFallTimeoutSurvivableDrop(t *testing.T) {
	g, pl, p := standingPlayer(t)
	drop := 0.5 * p.Gravity * math.Pow(p.FallTimeout.Seconds(), 2)
	if drop <= p.FatalFallDrop {
		t.Fatalf("timeout drop %v should exceed the fatal drop %v", drop, p.FatalFallDrop)
	}

	// A raised fatal drop turns the timeout into a plain respawn.
	p.FatalFallDrop = 20
	pl = NewPlayer(pl.Spawn(), Playfield{MinX: -5, MaxX: 30, MinZ: -5, MaxZ: 30}, p)
	g.SetEmpty(0, true)

	var u PlayerUpdate
	for n := 0; n < 100 && !u.Respawned; n++ {
		u = pl.Update(p.Quantum, g)
	}
	if !u.Respawned {
		t.Fatal("expected respawn after the fall timeout")
	}
	if u.Fatal {
		t.Error("an 18 unit drop should survive a fatal drop of 20")
	}
}

func TestFallLandsOnSlider(t *testing.T) {
	g, pl, p := standingPlayer(t)
	g.SetSliding(0, -2, -1) // surface at 0.5, below the player's feet

	for n := 1; n <= 8; n++ {
		u := pl.Update(p.Quantum, g)
		if u.Landed {
			t.Fatalf("landed early at tick %d", n)
		}
		if pl.State() != FreeFalling {
			t.Fatalf("tick %d: state = %v, expected falling", n, pl.State())
		}
	}

	u := pl.Update(p.Quantum, g)
	if !u.Landed || u.Fatal {
		t.Fatalf("tick 9: update = %+v, expected a safe landing", u)
	}
	if pl.State() != OnSlider || pl.RideIndex() != 0 {
		t.Fatalf("state = %v ride = %d, expected riding tile 0", pl.State(), pl.RideIndex())
	}
	if got := pl.Feet(); math.Abs(got-0.5) > eps {
		t.Errorf("feet = %v, expected 0.5", got)
	}

	// Riding follows the tile
	g.Cells[0].Offset = -1
	pl.Update(p.Quantum, g)
	if got := pl.Feet(); math.Abs(got-1.5) > eps {
		t.Errorf("feet after tile rose = %v, expected 1.5", got)
	}
}

func TestJumpLandingOnSlider(t *testing.T) {
	g, pl, p := standingPlayer(t)
	g.SetSliding(g.Index(1, 0), 0, 1)

	pl.Jump()
	pl.StartMove(Right)
	for range 40 {
		pl.Update(p.Quantum, g)
		if pl.State() != Jumping {
			break
		}
		if pl.Position().X() > 5.5 {
			pl.StopAll()
		}
	}
	if pl.State() != OnSlider || pl.RideIndex() != g.Index(1, 0) {
		t.Errorf("state = %v ride = %d, expected riding tile %d", pl.State(), pl.RideIndex(), g.Index(1, 0))
	}
}

func TestSliderRelease(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		expected MoveState
	}{
		{"raised slider releases into a jump", 2, Jumping},
		{"sunken slider releases into a fall", -2, FreeFalling},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, pl, p := standingPlayer(t)
			g.SetSliding(0, tc.offset, 1)
			pl.SnapFeet(g.Surface(0))

			pl.Update(p.Quantum, g)
			if pl.State() != OnSlider {
				t.Fatalf("state = %v, expected riding after stepping on", pl.State())
			}

			pl.StartMove(Right)
			for n := 1; n <= 5; n++ {
				pl.Update(p.Quantum, g)
				if pl.State() != OnSlider {
					t.Fatalf("released early at step %d (x = %v)", n, pl.Position().X())
				}
			}

			pl.Update(p.Quantum, g)
			if pl.State() != tc.expected {
				t.Errorf("state = %v, expected %v", pl.State(), tc.expected)
			}
			if pl.RideIndex() != OffGrid {
				t.Errorf("ride = %d, expected none", pl.RideIndex())
			}
		})
	}
}

func TestHorizontalMoveAndClamp(t *testing.T) {
	g, pl, p := standingPlayer(t)
	pl.field = Playfield{MinX: 0, MaxX: 10, MinZ: 0, MaxZ: 10}

	pl.StartMove(Right)
	pl.Update(p.Quantum, g)
	if got := pl.Position().X(); got != 3 {
		t.Errorf("x after one step = %v, expected 3", got)
	}
	if pl.Facing() != Right {
		t.Errorf("facing = %v, expected right", pl.Facing())
	}

	pl.StopMove(Right)
	pl.StartMove(Left)
	pl.StartMove(Forward)
	for range 30 {
		pl.ChangeSpeed(1)
	}
	for range 50 {
		pl.Update(p.Quantum, g)
	}
	pos := pl.Position()
	if pos.X() != 0 || pos.Z() != 0 {
		t.Errorf("position = %v, expected clamped to (0, _, 0)", pos)
	}
}

func TestPlayfieldClampAlwaysInside(t *testing.T) {
	f := Playfield{MinX: -5, MaxX: 55, MinZ: -5, MaxZ: 35}
	rng := rand.New(rand.NewSource(42)) //#nosec G404 -- deterministic test input

	for range 1000 {
		in := mgl64.Vec3{rng.Float64()*400 - 200, rng.Float64() * 10, rng.Float64()*400 - 200}
		out := f.Clamp(in)
		if out.X() < f.MinX || out.X() > f.MaxX || out.Z() < f.MinZ || out.Z() > f.MaxZ {
			t.Fatalf("Clamp(%v) = %v escapes the playfield", in, out)
		}
		if out.Y() != in.Y() {
			t.Fatalf("Clamp changed y: %v -> %v", in.Y(), out.Y())
		}
	}
}

func TestChangeSpeedBounds(t *testing.T) {
	_, pl, p := standingPlayer(t)

	pl.ChangeSpeed(1)
	if got := pl.Speed(); math.Abs(got-0.6) > eps {
		t.Errorf("speed = %v, expected 0.6", got)
	}
	for range 30 {
		pl.ChangeSpeed(1)
	}
	if pl.Speed() != p.MoveSpeedMax {
		t.Errorf("speed = %v, expected max %v", pl.Speed(), p.MoveSpeedMax)
	}
	for range 30 {
		pl.ChangeSpeed(-1)
	}
	if pl.Speed() != p.MoveSpeedMin {
		t.Errorf("speed = %v, expected min %v", pl.Speed(), p.MoveSpeedMin)
	}
}

func TestFiringAngle(t *testing.T) {
	_, pl, _ := standingPlayer(t)

	if got := pl.FiringAngle(); got != 180 {
		t.Errorf("initial firing angle = %v, expected 180 (forward)", got)
	}

	pl.RotateAim(1)
	if got := pl.FiringAngle(); got != 195 {
		t.Errorf("after +1 = %v, expected 195", got)
	}

	pl.RotateAim(-1)
	pl.RotateAim(-1)
	if got := pl.AimAngle(); got != 345 {
		t.Errorf("aim = %v, expected 345", got)
	}
	if got := pl.FiringAngle(); got != 165 {
		t.Errorf("firing angle = %v, expected 165", got)
	}

	pl.StartMove(Right)
	if got := pl.FiringAngle(); got != 75 {
		t.Errorf("facing right firing angle = %v, expected 75", got)
	}
}

func TestAnchorFollowsFacing(t *testing.T) {
	tests := []struct {
		facing   Direction
		expected mgl64.Vec3
	}{
		{Forward, mgl64.Vec3{2.5, 6.5, 1.5}},
		{Back, mgl64.Vec3{2.5, 6.5, 3.5}},
		{Left, mgl64.Vec3{1.5, 6.5, 2.5}},
		{Right, mgl64.Vec3{3.5, 6.5, 2.5}},
	}

	for _, tc := range tests {
		t.Run(tc.facing.String(), func(t *testing.T) {
			g, pl, p := standingPlayer(t)
			pl.StartMove(tc.facing)
			pl.StopMove(tc.facing)
			pl.Update(p.Quantum, g)

			if !pl.Anchor().ApproxEqual(tc.expected) {
				t.Errorf("Anchor() = %v, expected %v", pl.Anchor(), tc.expected)
			}
		})
	}
}

func TestAngleVector(t *testing.T) {
	tests := []struct {
		deg      float64
		expected mgl64.Vec3
	}{
		{0, mgl64.Vec3{0, 0, 1}},
		{90, mgl64.Vec3{1, 0, 0}},
		{180, mgl64.Vec3{0, 0, -1}},
		{270, mgl64.Vec3{-1, 0, 0}},
	}

	for _, tc := range tests {
		got := AngleVector(tc.deg)
		if !got.ApproxEqualThreshold(tc.expected, 1e-12) {
			t.Errorf("AngleVector(%v) = %v, expected %v", tc.deg, got, tc.expected)
		}
	}

	// Each facing fires the way it walks when the aim is centered
	for _, d := range Directions {
		if got := AngleVector(d.BaseAngle()); !got.ApproxEqualThreshold(d.Vector(), 1e-12) {
			t.Errorf("%v: AngleVector(%v) = %v, expected %v", d, d.BaseAngle(), got, d.Vector())
		}
	}
}

func TestRespawnClearsIntents(t *testing.T) {
	g, pl, p := standingPlayer(t)
	pl.StartMove(Back)
	pl.Update(p.Quantum, g)
	pl.Jump()

	pl.Respawn()
	if pl.State() != Grounded || pl.Airborne() {
		t.Errorf("state = %v, expected grounded", pl.State())
	}
	if pl.Moving(Back) {
		t.Error("respawn should clear movement intents")
	}
	if pl.Position() != pl.Spawn() {
		t.Errorf("position = %v, expected spawn", pl.Position())
	}
}
