// Package levels loads adventure scenes from YAML files.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/adventure-land/internal/games/adventure/sim"
)

// ErrInvalidLevel is wrapped by every validation failure.
var ErrInvalidLevel = errors.New("levels: invalid level")

// Layout glyphs. Row i of the layout is grid row i (x), column j is grid column j (z).
const (
	GlyphSolid   = '#'
	GlyphHollow  = '_'
	GlyphSliding = '='
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Grid     YAMLGrid      `yaml:"grid"`
	Layout   []string      `yaml:"layout"`
	Sliders  []YAMLSlider  `yaml:"sliders,omitempty"`
	Spawn    YAMLCell      `yaml:"spawn"`
	Hostiles []YAMLHostile `yaml:"hostiles,omitempty"`
	Bonuses  []YAMLCell    `yaml:"bonuses,omitempty"`
	Goal     YAMLCell      `yaml:"goal"`
}

// YAMLGrid represents grid dimensions.
type YAMLGrid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// YAMLCell places a body over a tile. Lift raises it above the resting height.
type YAMLCell struct {
	Row  int     `yaml:"row"`
	Col  int     `yaml:"col"`
	Lift float64 `yaml:"lift,omitempty"`
}

// YAMLSlider sets the starting phase of a '=' tile.
type YAMLSlider struct {
	Row    int     `yaml:"row"`
	Col    int     `yaml:"col"`
	Offset float64 `yaml:"offset"`
	Down   bool    `yaml:"down,omitempty"` // Start moving down
}

// YAMLHostile places a hostile. Speed scales the configured patrol speed;
// a negative scale starts the patrol in the negative direction.
type YAMLHostile struct {
	YAMLCell `yaml:",inline"`
	Patrol   bool    `yaml:"patrol"`
	Axis     string  `yaml:"axis,omitempty"` // "x" or "z"
	Speed    float64 `yaml:"speed,omitempty"`
	Hidden   bool    `yaml:"hidden,omitempty"`
}

// Level is a parsed and validated scene definition.
type Level struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Layout   []string
	Sliders  []YAMLSlider
	Spawn    YAMLCell
	Hostiles []YAMLHostile
	Bonuses  []YAMLCell
	Goal     YAMLCell
	FilePath string
}

// Parse decodes and validates a YAML level file.
func Parse(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}

	lvl := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     yl.Grid.Rows,
		Cols:     yl.Grid.Cols,
		Layout:   yl.Layout,
		Sliders:  yl.Sliders,
		Spawn:    yl.Spawn,
		Hostiles: yl.Hostiles,
		Bonuses:  yl.Bonuses,
		Goal:     yl.Goal,
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// Validate checks the grid, the layout and that every placement is on the grid.
func (l *Level) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if l.Rows <= 0 || l.Cols <= 0 {
		return fmt.Errorf("%w: %s: grid %dx%d", ErrInvalidLevel, l.ID, l.Rows, l.Cols)
	}
	if len(l.Layout) != 0 && len(l.Layout) != l.Rows {
		return fmt.Errorf("%w: %s: layout has %d rows, grid has %d", ErrInvalidLevel, l.ID, len(l.Layout), l.Rows)
	}
	for i, line := range l.Layout {
		if n := len([]rune(line)); n != l.Cols {
			return fmt.Errorf("%w: %s: layout row %d has %d tiles, grid has %d", ErrInvalidLevel, l.ID, i, n, l.Cols)
		}
		for _, r := range line {
			if r != GlyphSolid && r != GlyphHollow && r != GlyphSliding {
				return fmt.Errorf("%w: %s: layout row %d: unknown tile %q", ErrInvalidLevel, l.ID, i, r)
			}
		}
	}

	check := func(what string, c YAMLCell) error {
		if c.Row < 0 || c.Row >= l.Rows || c.Col < 0 || c.Col >= l.Cols {
			return fmt.Errorf("%w: %s: %s at (%d,%d) is off the grid", ErrInvalidLevel, l.ID, what, c.Row, c.Col)
		}
		return nil
	}
	if err := check("spawn", l.Spawn); err != nil {
		return err
	}
	if l.glyph(l.Spawn.Row, l.Spawn.Col) == GlyphHollow {
		return fmt.Errorf("%w: %s: spawn over a hollow tile", ErrInvalidLevel, l.ID)
	}
	if err := check("goal", l.Goal); err != nil {
		return err
	}
	for i, s := range l.Sliders {
		if err := check(fmt.Sprintf("slider %d", i), YAMLCell{Row: s.Row, Col: s.Col}); err != nil {
			return err
		}
		if l.glyph(s.Row, s.Col) != GlyphSliding {
			return fmt.Errorf("%w: %s: slider %d at (%d,%d) is not a '=' tile", ErrInvalidLevel, l.ID, i, s.Row, s.Col)
		}
	}
	for i, h := range l.Hostiles {
		if err := check(fmt.Sprintf("hostile %d", i), h.YAMLCell); err != nil {
			return err
		}
		if _, err := parseAxis(h.Axis); err != nil {
			return fmt.Errorf("%w: %s: hostile %d: %v", ErrInvalidLevel, l.ID, i, err)
		}
	}
	for i, b := range l.Bonuses {
		if err := check(fmt.Sprintf("bonus %d", i), b); err != nil {
			return err
		}
	}
	return nil
}

// glyph returns the layout tile at (row, col); an empty layout is all solid.
func (l *Level) glyph(row, col int) rune {
	if len(l.Layout) == 0 {
		return GlyphSolid
	}
	return []rune(l.Layout[row])[col]
}

// Build lays the level out on a fresh grid sized by p.
// Bodies rest on the ground surface plus their lift.
func (l *Level) Build(p sim.Params) sim.Setup {
	g := sim.NewGrid(l.Rows, l.Cols, p)
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			idx := g.Index(row, col)
			switch l.glyph(row, col) {
			case GlyphHollow:
				g.SetEmpty(idx, true)
			case GlyphSliding:
				g.SetSliding(idx, 0, 1)
			}
		}
	}
	for _, s := range l.Sliders {
		dir := 1.0
		if s.Down {
			dir = -1
		}
		g.SetSliding(g.Index(s.Row, s.Col), s.Offset, dir)
	}

	ground := g.GroundLevel()
	place := func(c YAMLCell, height float64) mgl64.Vec3 {
		return mgl64.Vec3{
			(float64(c.Row) + 0.5) * p.TileWidth,
			ground + height/2 + c.Lift,
			(float64(c.Col) + 0.5) * p.TileLength,
		}
	}

	setup := sim.Setup{
		Grid:  g,
		Spawn: place(l.Spawn, p.PlayerHeight),
		Goal:  place(l.Goal, p.GoalSize),
	}
	for _, h := range l.Hostiles {
		axis, _ := parseAxis(h.Axis)
		scale := h.Speed
		if scale == 0 {
			scale = 1
		}
		setup.Hostiles = append(setup.Hostiles, sim.HostileSpec{
			Position: place(h.YAMLCell, p.HostileHeight),
			Patrol:   h.Patrol,
			Axis:     axis,
			Speed:    p.HostileSpeed * scale,
			Hidden:   h.Hidden,
		})
	}
	for _, b := range l.Bonuses {
		setup.Bonuses = append(setup.Bonuses, place(b, p.BonusSize))
	}
	return setup
}

func parseAxis(s string) (sim.Axis, error) {
	switch strings.ToLower(s) {
	case "", "x":
		return sim.AxisX, nil
	case "z":
		return sim.AxisZ, nil
	default:
		return sim.AxisX, fmt.Errorf("unknown axis %q", s)
	}
}
