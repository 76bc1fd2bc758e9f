package adventure

import (
	"strings"
	"testing"

	"github.com/vovakirdan/adventure-land/internal/core"
)

func countRune(s *core.Screen, r rune) int {
	n := 0
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) == r {
				n++
			}
		}
	}
	return n
}

func TestRenderShowsScene(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Strip", "Score 0", "Lives 3", "grounded"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	for _, r := range []rune{GlyphPlayer, GlyphWater, GlyphGoal, GlyphAim} {
		if countRune(screen, r) == 0 {
			t.Errorf("glyph %q not drawn", r)
		}
	}
	if countRune(screen, GlyphTile)+countRune(screen, GlyphTileAlt) == 0 {
		t.Error("no tiles drawn")
	}
	if screen.Get(0, 1) != '┌' {
		t.Errorf("frame corner = %q", screen.Get(0, 1))
	}
}

func TestRenderBanners(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	screen := core.NewScreen(80, 24)

	g.Step(frameOf(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused banner missing")
	}
	// The panel blanks the terrain on both sides of the text
	line := screen.Row(screen.Height() / 2)
	if i := strings.Index(line, "PAUSED"); i < 0 {
		t.Errorf("banner not on the middle row: %q", line)
	} else {
		row := []rune(line)
		at := len([]rune(line[:i]))
		for x := at - 3; x < at; x++ {
			if row[x] != ' ' {
				t.Errorf("banner panel cell %d = %q, expected blank", x, row[x])
			}
		}
	}

	g.Step(frameOf(core.ActionPause))
	walkIntoWater(t, g)
	screen.Clear()
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner missing")
	}
	if !strings.Contains(screen.Row(0), "Lives 0") {
		t.Errorf("HUD should clamp negative lives: %q", screen.Row(0))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected the too-small notice")
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := newView(core.NewRect(1, 2, 78, 21), -5, 20, -5, 20)

	for _, pt := range [][2]float64{{0, 0}, {-4.9, 19.9}, {12.3, 7.7}} {
		col, row := v.toScreen(pt[0], pt[1])
		if !v.inside(col, row) {
			t.Fatalf("%v projects outside the view to (%d,%d)", pt, col, row)
		}
		x, z := v.toWorld(col, row)
		if d := x - pt[0]; d < -1/v.sx || d > 1/v.sx {
			t.Errorf("x %v -> col %d -> %v", pt[0], col, x)
		}
		if d := z - pt[1]; d < -1/v.sz || d > 1/v.sz {
			t.Errorf("z %v -> row %d -> %v", pt[1], row, z)
		}
	}
	if v.sx != 2*v.sz {
		t.Errorf("aspect sx=%v sz=%v", v.sx, v.sz)
	}
}
