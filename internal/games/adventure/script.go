package adventure

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vovakirdan/adventure-land/internal/core"
)

// ErrInvalidScript is wrapped by ParseScript failures.
var ErrInvalidScript = errors.New("adventure: invalid script")

// ScriptStep applies one action and then runs Ticks ticks.
type ScriptStep struct {
	Action core.Action
	Ticks  int
}

// scriptCommands maps script letters to actions. W waits.
var scriptCommands = map[string]core.Action{
	"U": core.ActionForward,
	"D": core.ActionBack,
	"L": core.ActionLeft,
	"R": core.ActionRight,
	"X": core.ActionStop,
	"J": core.ActionJump,
	"F": core.ActionFire,
	"Q": core.ActionAimLeft,
	"E": core.ActionAimRight,
	"+": core.ActionSpeedUp,
	"-": core.ActionSpeedDown,
	"P": core.ActionPause,
	"W": core.ActionNone,
}

// ParseScript parses a comma separated list of steps such as "R20,J,W5,F".
// Each step is a command letter followed by an optional tick count
// (default 1). U/D/L/R toggle movement, X stops, J jumps, F fires, Q/E
// rotate the aim, +/- change speed, P pauses and W only waits.
func ParseScript(src string) ([]ScriptStep, error) {
	var steps []ScriptStep
	for i, raw := range strings.Split(src, ",") {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}

		cmd := strings.ToUpper(tok[:1])
		action, ok := scriptCommands[cmd]
		if !ok {
			return nil, fmt.Errorf("%w: step %d: unknown command %q", ErrInvalidScript, i+1, tok[:1])
		}

		ticks := 1
		if rest := tok[1:]; rest != "" {
			if strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
				return nil, fmt.Errorf("%w: step %d: bad tick count %q", ErrInvalidScript, i+1, rest)
			}
			n, err := strconv.Atoi(rest)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: step %d: bad tick count %q", ErrInvalidScript, i+1, rest)
			}
			ticks = n
		}
		steps = append(steps, ScriptStep{Action: action, Ticks: ticks})
	}
	return steps, nil
}

// Play feeds steps to the game, one tick per Advance, stopping after limit
// ticks (0 means no limit) or when the session ends. It returns the number
// of ticks run.
func Play(g *Game, steps []ScriptStep, limit int) int {
	n := 0
	frame := core.NewInputFrame()
	for _, s := range steps {
		frame.Clear()
		if s.Action != core.ActionNone {
			frame.Set(s.Action)
		}
		if s.Ticks == 0 {
			// Apply without ticking: pause or stacked intents
			g.Apply(frame)
			continue
		}
		for range s.Ticks {
			if g.State().Over() || (limit > 0 && n >= limit) {
				return n
			}
			if g.Advance(frame).Ticked {
				n++
			}
			frame.Clear()
		}
	}
	return n
}
