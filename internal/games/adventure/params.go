package adventure

import (
	"github.com/vovakirdan/adventure-land/internal/config"
	"github.com/vovakirdan/adventure-land/internal/games/adventure/sim"
)

// ParamsFromConfig maps the YAML configuration onto simulation parameters.
func ParamsFromConfig(cfg config.AdventureConfig) sim.Params {
	return sim.Params{
		Quantum: cfg.Tick.Quantum,

		TileWidth:  cfg.Tiles.Width,
		TileLength: cfg.Tiles.Length,
		TileHeight: cfg.Tiles.Height,
		BaseY:      cfg.Tiles.BaseY,

		SlideStep:  cfg.Slide.Step,
		SlideLower: cfg.Slide.Lower,
		SlideUpper: cfg.Slide.Upper,

		PlayerWidth:  cfg.Player.Width,
		PlayerLength: cfg.Player.Length,
		PlayerHeight: cfg.Player.Height,

		MoveSpeed:     cfg.Player.MoveSpeed,
		MoveSpeedStep: cfg.Player.MoveSpeedStep,
		MoveSpeedMin:  cfg.Player.MoveSpeedMin,
		MoveSpeedMax:  cfg.Player.MoveSpeedMax,
		AimStep:       cfg.Player.AimStep,

		JumpSpeed:     cfg.Physics.JumpSpeed,
		ReleaseSpeed:  cfg.Physics.ReleaseSpeed,
		Gravity:       cfg.Physics.Gravity,
		FallTimeout:   cfg.Physics.FallTimeout,
		FatalJumpDrop: cfg.Physics.FatalJumpDrop,
		FatalFallDrop: cfg.Physics.FatalFallDrop,

		HostileWidth:     cfg.Hostile.Width,
		HostileLength:    cfg.Hostile.Length,
		HostileHeight:    cfg.Hostile.Height,
		HostileSpeed:     cfg.Hostile.Speed,
		VisibilityPeriod: cfg.Hostile.VisibilityPeriod,
		DirectionPeriod:  cfg.Hostile.DirectionPeriod,

		BonusSize: cfg.Session.BonusSize,
		GoalSize:  cfg.Session.GoalSize,

		ProjectileSize:  cfg.Projectile.Size,
		ProjectileSpeed: cfg.Projectile.Speed,
		ProjectileRange: cfg.Projectile.Range,
		LockAim:         cfg.Projectile.LockAim,

		SnapBand: cfg.Session.SnapBand,
		Lives:    cfg.Session.Lives,

		PlayfieldMargin: cfg.Playfield.Margin,
	}
}
