// Package config provides YAML-based tuning for the adventure simulation:
// embedded defaults, a user/local search chain and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for values the simulation cannot run with.
var ErrInvalidConfig = errors.New("config: invalid value")

// AdventureConfig contains all tuning constants for one session.
type AdventureConfig struct {
	Tick       TickConfig       `yaml:"tick"`
	Tiles      TilesConfig      `yaml:"tiles"`
	Slide      SlideConfig      `yaml:"slide"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Hostile    HostileConfig    `yaml:"hostile"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Session    SessionConfig    `yaml:"session"`
	Playfield  PlayfieldConfig  `yaml:"playfield"`
}

// TickConfig defines the simulation clock.
type TickConfig struct {
	Quantum time.Duration `yaml:"quantum"` // Simulated time per tick
}

// TilesConfig defines platform tile extents.
type TilesConfig struct {
	Width  float64 `yaml:"width"`  // Along x
	Length float64 `yaml:"length"` // Along z
	Height float64 `yaml:"height"` // Along y
	BaseY  float64 `yaml:"base_y"` // Center height at zero offset
}

// SlideConfig defines the vertical oscillation of sliding tiles.
type SlideConfig struct {
	Step  float64 `yaml:"step"` // Offset change per tick
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// PlayerConfig defines the player body and horizontal controls.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Length        float64 `yaml:"length"`
	Height        float64 `yaml:"height"`
	MoveSpeed     float64 `yaml:"move_speed"` // Units per tick
	MoveSpeedStep float64 `yaml:"move_speed_step"`
	MoveSpeedMin  float64 `yaml:"move_speed_min"`
	MoveSpeedMax  float64 `yaml:"move_speed_max"`
	AimStep       float64 `yaml:"aim_step"` // Degrees per rotate command
}

// PhysicsConfig defines jump and fall parameters.
type PhysicsConfig struct {
	JumpSpeed     float64       `yaml:"jump_speed"`
	ReleaseSpeed  float64       `yaml:"release_speed"`
	Gravity       float64       `yaml:"gravity"`
	FallTimeout   time.Duration `yaml:"fall_timeout"`
	FatalJumpDrop float64       `yaml:"fatal_jump_drop"`
	FatalFallDrop float64       `yaml:"fatal_fall_drop"`
}

// HostileConfig defines hostile bodies and their patrol timers.
type HostileConfig struct {
	Width            float64       `yaml:"width"`
	Length           float64       `yaml:"length"`
	Height           float64       `yaml:"height"`
	Speed            float64       `yaml:"speed"`
	VisibilityPeriod time.Duration `yaml:"visibility_period"`
	DirectionPeriod  time.Duration `yaml:"direction_period"`
}

// ProjectileConfig defines the player's single projectile.
type ProjectileConfig struct {
	Size    float64 `yaml:"size"`
	Speed   float64 `yaml:"speed"`
	Range   float64 `yaml:"range"`
	LockAim bool    `yaml:"lock_aim"`
}

// SessionConfig defines scoring bodies and lives.
type SessionConfig struct {
	Lives     int     `yaml:"lives"`
	SnapBand  float64 `yaml:"snap_band"`
	BonusSize float64 `yaml:"bonus_size"`
	GoalSize  float64 `yaml:"goal_size"`
}

// PlayfieldConfig defines the walkable border around the grid.
type PlayfieldConfig struct {
	Margin float64 `yaml:"margin"`
}

// Validate checks that every extent, period and limit is usable.
func (c *AdventureConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"tiles.width", c.Tiles.Width},
		{"tiles.length", c.Tiles.Length},
		{"tiles.height", c.Tiles.Height},
		{"player.width", c.Player.Width},
		{"player.length", c.Player.Length},
		{"player.height", c.Player.Height},
		{"player.move_speed_max", c.Player.MoveSpeedMax},
		{"physics.gravity", c.Physics.Gravity},
		{"hostile.width", c.Hostile.Width},
		{"hostile.length", c.Hostile.Length},
		{"hostile.height", c.Hostile.Height},
		{"projectile.size", c.Projectile.Size},
		{"projectile.speed", c.Projectile.Speed},
		{"projectile.range", c.Projectile.Range},
		{"session.bonus_size", c.Session.BonusSize},
		{"session.goal_size", c.Session.GoalSize},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}

	periods := []struct {
		name  string
		value time.Duration
	}{
		{"tick.quantum", c.Tick.Quantum},
		{"physics.fall_timeout", c.Physics.FallTimeout},
		{"hostile.visibility_period", c.Hostile.VisibilityPeriod},
		{"hostile.direction_period", c.Hostile.DirectionPeriod},
	}
	for _, f := range periods {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}

	if c.Slide.Lower > c.Slide.Upper {
		return fmt.Errorf("%w: slide.lower %v above slide.upper %v", ErrInvalidConfig, c.Slide.Lower, c.Slide.Upper)
	}
	if c.Player.MoveSpeedMin > c.Player.MoveSpeedMax {
		return fmt.Errorf("%w: player.move_speed_min %v above move_speed_max %v",
			ErrInvalidConfig, c.Player.MoveSpeedMin, c.Player.MoveSpeedMax)
	}
	if c.Session.Lives < 0 {
		return fmt.Errorf("%w: session.lives must not be negative, got %d", ErrInvalidConfig, c.Session.Lives)
	}
	if c.Playfield.Margin < 0 {
		return fmt.Errorf("%w: playfield.margin must not be negative, got %v", ErrInvalidConfig, c.Playfield.Margin)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. An empty string means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	case "":
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (easy, normal, hard, fixed)", ErrInvalidConfig, s)
	}
}
