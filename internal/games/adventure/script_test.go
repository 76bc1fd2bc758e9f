package adventure

import (
	"errors"
	"testing"

	"github.com/vovakirdan/adventure-land/internal/core"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		src      string
		expected []ScriptStep
	}{
		{"", nil},
		{"R20", []ScriptStep{{core.ActionRight, 20}}},
		{"r, j ,w5", []ScriptStep{{core.ActionRight, 1}, {core.ActionJump, 1}, {core.ActionNone, 5}}},
		{"F0,+,-3", []ScriptStep{{core.ActionFire, 0}, {core.ActionSpeedUp, 1}, {core.ActionSpeedDown, 3}}},
		{"U,D,L,X,Q,E,P", []ScriptStep{
			{core.ActionForward, 1}, {core.ActionBack, 1}, {core.ActionLeft, 1}, {core.ActionStop, 1},
			{core.ActionAimLeft, 1}, {core.ActionAimRight, 1}, {core.ActionPause, 1},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := ParseScript(tc.src)
			if err != nil {
				t.Fatalf("ParseScript: %v", err)
			}
			if len(got) != len(tc.expected) {
				t.Fatalf("got %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("step %d = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{"Z", "R2x", "J-1", "W 5"} {
		if _, err := ParseScript(src); !errors.Is(err, ErrInvalidScript) {
			t.Errorf("ParseScript(%q) = %v, expected ErrInvalidScript", src, err)
		}
	}
}

func TestPlayCountsTicks(t *testing.T) {
	g, _ := newTestGame(t, Options{})

	steps, _ := ParseScript("D0,W10,D,P,W5,P0,W3")
	n := Play(g, steps, 0)
	// D0 and P0 do not tick, P pauses so its tick and W5 are held
	if n != 14 || g.State().Tick != 14 {
		t.Errorf("Play ran %d ticks, world at %d, expected 14", n, g.State().Tick)
	}

	g, _ = newTestGame(t, Options{})
	steps, _ = ParseScript("W100")
	if n := Play(g, steps, 25); n != 25 {
		t.Errorf("limit: ran %d ticks, expected 25", n)
	}
}

func TestPlayStopsWhenOver(t *testing.T) {
	g, _ := newTestGame(t, Options{})

	steps, _ := ParseScript("L,W500")
	n := Play(g, steps, 0)
	if !g.State().Lost {
		t.Fatal("walking into the water should lose")
	}
	if uint64(n) != g.State().Tick || n >= 501 {
		t.Errorf("ran %d ticks, world at %d", n, g.State().Tick)
	}
}
