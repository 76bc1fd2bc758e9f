// Package sim is the fixed-tick simulation of Adventure Land: the tile grid,
// the player state machine, hostiles, the projectile and collision resolution.
// It has no dependency on the terminal layer; everything here is deterministic
// given the same intents and the same number of ticks.
package sim

import "time"

// Params holds the tuning constants of one simulation.
// Distances are world units, speeds are units per second unless noted.
type Params struct {
	Quantum time.Duration // Simulated time advanced by one tick

	TileWidth  float64 // Tile extent along x
	TileLength float64 // Tile extent along z
	TileHeight float64 // Tile extent along y
	BaseY      float64 // Center height of a tile with zero offset

	SlideStep  float64 // Offset change per tick for sliding tiles
	SlideLower float64
	SlideUpper float64

	PlayerWidth  float64
	PlayerLength float64
	PlayerHeight float64

	MoveSpeed     float64 // Units per tick
	MoveSpeedStep float64
	MoveSpeedMin  float64
	MoveSpeedMax  float64
	AimStep       float64 // Degrees per rotate command

	JumpSpeed     float64
	ReleaseSpeed  float64 // Vertical speed when sliding off a raised slider
	Gravity       float64
	FallTimeout   time.Duration
	FatalJumpDrop float64
	// FatalFallDrop below 0.5*Gravity*FallTimeout^2 makes every timed-out
	// fall fatal. The stock tuning drops about 18 units by then, so a fall
	// off the grid always ends the session.
	FatalFallDrop float64

	HostileWidth     float64
	HostileLength    float64
	HostileHeight    float64
	HostileSpeed     float64 // Patrol speed when a hostile does not set its own
	VisibilityPeriod time.Duration
	DirectionPeriod  time.Duration

	BonusSize float64
	GoalSize  float64

	ProjectileSize  float64
	ProjectileSpeed float64
	ProjectileRange float64
	LockAim         bool // Keep the launch direction instead of following the aim

	SnapBand float64 // Max feet-to-surface gap for the slider safety clamp
	Lives    int

	PlayfieldMargin float64 // Walkable water border around the grid
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Quantum: 50 * time.Millisecond,

		TileWidth:  5,
		TileLength: 5,
		TileHeight: 5,
		BaseY:      0,

		SlideStep:  0.5,
		SlideLower: -3,
		SlideUpper: 3,

		PlayerWidth:  2,
		PlayerLength: 2,
		PlayerHeight: 4,

		MoveSpeed:     0.5,
		MoveSpeedStep: 0.1,
		MoveSpeedMin:  0.1,
		MoveSpeedMax:  1.5,
		AimStep:       15,

		JumpSpeed:     6,
		ReleaseSpeed:  -1,
		Gravity:       20,
		FallTimeout:   1300 * time.Millisecond,
		FatalJumpDrop: 13,
		FatalFallDrop: 11,

		HostileWidth:     2,
		HostileLength:    2,
		HostileHeight:    3,
		HostileSpeed:     2,
		VisibilityPeriod: 15 * time.Second,
		DirectionPeriod:  5 * time.Second,

		BonusSize: 1,
		GoalSize:  3,

		ProjectileSize:  0.5,
		ProjectileSpeed: 10,
		ProjectileRange: 30,

		SnapBand: 1,
		Lives:    3,

		PlayfieldMargin: 5,
	}
}
