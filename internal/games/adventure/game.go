// Package adventure adapts the platformer simulation to the terminal
// platform: it maps actions to player intents, gates ticks on the wall
// clock, logs and journals tick events and draws a top-down view.
package adventure

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/adventure-land/internal/config"
	"github.com/vovakirdan/adventure-land/internal/core"
	"github.com/vovakirdan/adventure-land/internal/games/adventure/levels"
	"github.com/vovakirdan/adventure-land/internal/games/adventure/sim"
	"github.com/vovakirdan/adventure-land/internal/storage"
)

// Options configures a Game.
type Options struct {
	Config  config.AdventureConfig
	Level   levels.Level
	Logger  *log.Logger      // Nil discards
	Journal *storage.Store   // Nil disables journaling
	Now     func() time.Time // Nil uses time.Now
}

// Game implements the adventure session on top of sim.World.
type Game struct {
	cfg     config.AdventureConfig
	params  sim.Params
	level   levels.Level
	logger  *log.Logger
	journal *storage.Store
	now     func() time.Time

	world  *sim.World
	gate   *sim.Gate
	paused bool
	events []sim.Event // Events of the last tick
	run    int64
	closed bool // Run outcome stored

	runtime core.RuntimeConfig
}

// New creates a game for one level. Call Reset before the first Step.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Level.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     opts.Config,
		params:  ParamsFromConfig(opts.Config),
		level:   opts.Level,
		logger:  opts.Logger,
		journal: opts.Journal,
		now:     opts.Now,
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.now == nil {
		g.now = time.Now
	}
	g.gate = sim.NewGate(g.params.Quantum)
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "adventure"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return fmt.Sprintf("Adventure Land: %s", g.level.Name)
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.AdventureConfig {
	return g.cfg
}

// Params returns the simulation parameters in use.
func (g *Game) Params() sim.Params {
	return g.params
}

// Reset builds a fresh world from the level and starts a new journal run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = sim.NewWorld(g.params, g.level.Build(g.params))
	g.paused = false
	g.events = nil
	g.closed = false
	g.gate.Reset(g.now())

	g.run = 0
	if g.journal != nil {
		run, err := g.journal.BeginRun(g.level.ID)
		if err != nil {
			g.logger.Warn("journal disabled", "err", err)
			g.journal = nil
		} else {
			g.run = run
		}
	}

	g.logger.Info("session started",
		"level", g.level.ID,
		"lives", g.world.Session.Lives,
		"run", g.run,
	)
}

// Step handles one platform frame: intents are applied at once, the
// simulation advances when the gate has seen a full quantum.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.Apply(in) || !g.gate.Ready(g.now()) {
		return core.StepResult{State: g.State()}
	}
	g.tick()
	return core.StepResult{State: g.State(), Ticked: true}
}

// Advance applies in and runs exactly one tick without consulting the
// clock. Headless runs use it; pause still holds the world.
func (g *Game) Advance(in core.InputFrame) core.StepResult {
	if !g.Apply(in) {
		return core.StepResult{State: g.State()}
	}
	g.tick()
	return core.StepResult{State: g.State(), Ticked: true}
}

// Apply handles restart, pause and player intents without ticking. It
// returns false when the world is paused or over.
func (g *Game) Apply(in core.InputFrame) bool {
	if g.handleControl(in) {
		return false
	}
	g.apply(in)
	return true
}

// handleControl processes restart and pause. It returns true when the
// frame should not reach the world.
func (g *Game) handleControl(in core.InputFrame) bool {
	if g.world.Over() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return true
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if !g.paused {
			// Do not count the pause as elapsed time
			g.gate.Reset(g.now())
		}
		g.logger.Debug("pause toggled", "paused", g.paused, "tick", g.world.Ticks())
	}
	return g.paused
}

// apply maps actions onto player intents.
func (g *Game) apply(in core.InputFrame) {
	w := g.world
	toggles := []struct {
		action core.Action
		dir    sim.Direction
	}{
		{core.ActionForward, sim.Forward},
		{core.ActionBack, sim.Back},
		{core.ActionLeft, sim.Left},
		{core.ActionRight, sim.Right},
	}
	for _, t := range toggles {
		if !in.Has(t.action) {
			continue
		}
		if w.Player.Moving(t.dir) {
			w.StopMove(t.dir)
		} else {
			w.StartMove(t.dir)
		}
	}

	if in.Has(core.ActionStop) {
		w.StopAll()
	}
	if in.Has(core.ActionJump) {
		w.Jump()
	}
	if in.Has(core.ActionAimLeft) {
		w.RotateAim(-1)
	}
	if in.Has(core.ActionAimRight) {
		w.RotateAim(1)
	}
	if in.Has(core.ActionSpeedUp) {
		w.ChangeSpeed(1)
	}
	if in.Has(core.ActionSpeedDown) {
		w.ChangeSpeed(-1)
	}
	if in.Has(core.ActionFire) {
		w.Fire()
	}
}

// tick advances the world once and reports its events.
func (g *Game) tick() {
	g.events = g.world.Tick()
	for _, e := range g.events {
		g.logEvent(e)
	}
	g.record(g.events)

	if g.world.Over() && !g.closed {
		g.closed = true
		g.finish()
	}
}

func (g *Game) logEvent(e sim.Event) {
	s := g.world.Session
	switch e.Kind {
	case sim.EventBonusCollected:
		g.logger.Info("bonus collected", "tick", e.Tick, "bonus", e.Index, "score", s.Score)
	case sim.EventHostileHit:
		g.logger.Info("hostile hit", "tick", e.Tick, "hostile", e.Index, "lives", s.Lives)
	case sim.EventHostileKilled:
		g.logger.Info("hostile killed", "tick", e.Tick, "hostile", e.Index)
	case sim.EventFellOff:
		g.logger.Info("fell off", "tick", e.Tick, "lives", s.Lives)
	case sim.EventWon:
		g.logger.Info("goal reached", "tick", e.Tick, "score", s.Score)
	case sim.EventLost:
		g.logger.Info("session lost", "tick", e.Tick, "score", s.Score, "lives", s.Lives)
	default:
		g.logger.Debug(e.Kind.String(), "tick", e.Tick, "index", e.Index,
			"x", e.Position.X(), "y", e.Position.Y(), "z", e.Position.Z())
	}
}

func (g *Game) record(events []sim.Event) {
	if g.journal == nil || len(events) == 0 {
		return
	}
	entries := make([]storage.Entry, len(events))
	for i, e := range events {
		entries[i] = storage.Entry{
			Tick:  e.Tick,
			Kind:  e.Kind.String(),
			Index: e.Index,
			X:     e.Position.X(),
			Y:     e.Position.Y(),
			Z:     e.Position.Z(),
		}
	}
	if err := g.journal.Record(g.run, entries); err != nil {
		g.logger.Warn("journal disabled", "err", err)
		g.journal = nil
	}
}

// End closes the journal run of an unfinished session, for a player
// quitting mid-session. It is a no-op once the run is closed.
func (g *Game) End() {
	if g.world == nil || g.closed {
		return
	}
	g.closed = true
	g.logger.Info("session ended", "tick", g.world.Ticks(), "score", g.world.Session.Score)
	g.finish()
}

func (g *Game) finish() {
	s := g.world.Session
	if g.journal == nil {
		return
	}
	err := g.journal.FinishRun(g.run, storage.Outcome{
		Score: s.Score,
		Lives: s.Lives,
		Ticks: g.world.Ticks(),
		Won:   s.Won,
		Lost:  s.Lost,
	})
	if err != nil {
		g.logger.Warn("journal disabled", "err", err)
		g.journal = nil
	}
}

// State returns the current session counters.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	s := g.world.Session
	return core.GameState{
		Score:  s.Score,
		Lives:  s.Lives,
		Won:    s.Won,
		Lost:   s.Lost,
		Paused: g.paused,
		Tick:   g.world.Ticks(),
	}
}

// Snapshot returns a copy of the world for rendering or hashing.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}

// Events returns the events of the most recent tick.
func (g *Game) Events() []sim.Event {
	return g.events
}

// Run returns the journal run of the current session, 0 without a journal.
func (g *Game) Run() int64 {
	return g.run
}

// Journal returns the journal in use, nil when disabled.
func (g *Game) Journal() *storage.Store {
	return g.journal
}
