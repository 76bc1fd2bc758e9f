package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/adventure.yaml
var defaultAdventureYAML []byte

// DefaultAdventureConfig returns the stock tuning.
func DefaultAdventureConfig() AdventureConfig {
	return AdventureConfig{
		Tick: TickConfig{
			Quantum: 50 * time.Millisecond,
		},
		Tiles: TilesConfig{
			Width:  5,
			Length: 5,
			Height: 5,
			BaseY:  0,
		},
		Slide: SlideConfig{
			Step:  0.5,
			Lower: -3,
			Upper: 3,
		},
		Player: PlayerConfig{
			Width:         2,
			Length:        2,
			Height:        4,
			MoveSpeed:     0.5,
			MoveSpeedStep: 0.1,
			MoveSpeedMin:  0.1,
			MoveSpeedMax:  1.5,
			AimStep:       15,
		},
		Physics: PhysicsConfig{
			JumpSpeed:     6,
			ReleaseSpeed:  -1,
			Gravity:       20,
			FallTimeout:   1300 * time.Millisecond,
			FatalJumpDrop: 13,
			FatalFallDrop: 11,
		},
		Hostile: HostileConfig{
			Width:            2,
			Length:           2,
			Height:           3,
			Speed:            2,
			VisibilityPeriod: 15 * time.Second,
			DirectionPeriod:  5 * time.Second,
		},
		Projectile: ProjectileConfig{
			Size:  0.5,
			Speed: 10,
			Range: 30,
		},
		Session: SessionConfig{
			Lives:     3,
			SnapBand:  1,
			BonusSize: 1,
			GoalSize:  3,
		},
		Playfield: PlayfieldConfig{
			Margin: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultAdventureYAML
}
