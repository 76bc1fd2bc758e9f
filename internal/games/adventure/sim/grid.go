package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/adventure-land/internal/core"
)

// OffGrid is returned by CellIndexAt for positions outside the grid.
// It means "no tile underfoot", typically water.
const OffGrid = -1

// Cell is one platform tile.
type Cell struct {
	Row, Col int
	Visible  bool
	Empty    bool // Hollow tile: nothing to stand on
	Sliding  bool
	Offset   float64 // Vertical offset, sliding tiles only
	Dir      float64 // +1 rising, -1 sinking
}

// Solid reports whether the cell can carry an entity.
func (c *Cell) Solid() bool {
	return !c.Empty
}

// Grid is the playfield of Rows x Cols tiles anchored at the world origin.
// Rows run along x, columns along z. Cells are stored column-major:
// index = col*Rows + row.
type Grid struct {
	Rows, Cols int
	TileW      float64
	TileL      float64
	TileH      float64
	BaseY      float64

	step, lower, upper float64

	Cells []Cell
}

// NewGrid creates a grid where every cell is a visible solid tile.
func NewGrid(rows, cols int, p Params) *Grid {
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		TileW: p.TileWidth,
		TileL: p.TileLength,
		TileH: p.TileHeight,
		BaseY: p.BaseY,
		step:  p.SlideStep,
		lower: p.SlideLower,
		upper: p.SlideUpper,
		Cells: make([]Cell, rows*cols),
	}
	for col := range cols {
		for row := range rows {
			g.Cells[col*rows+row] = Cell{Row: row, Col: col, Visible: true, Dir: 1}
		}
	}
	return g
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.Cells)
}

// Index returns the linear index of (row, col), or OffGrid.
func (g *Grid) Index(row, col int) int {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return OffGrid
	}
	return col*g.Rows + row
}

// RowCol converts a linear index back to (row, col).
func (g *Grid) RowCol(idx int) (row, col int) {
	return idx % g.Rows, idx / g.Rows
}

// CellIndexAt returns the index of the tile under world position (x, z).
func (g *Grid) CellIndexAt(x, z float64) int {
	row := int(math.Floor(x / g.TileW))
	col := int(math.Floor(z / g.TileL))
	return g.Index(row, col)
}

// Cell returns the cell at idx, or nil when idx is off the grid.
func (g *Grid) Cell(idx int) *Cell {
	if idx < 0 || idx >= len(g.Cells) {
		return nil
	}
	return &g.Cells[idx]
}

// SetEmpty makes the tile at idx hollow (or solid again).
func (g *Grid) SetEmpty(idx int, empty bool) {
	if c := g.Cell(idx); c != nil {
		c.Empty = empty
		c.Visible = !empty
	}
}

// SetSliding turns the tile at idx into a slider starting at offset and
// moving in direction dir (+1 up, -1 down).
func (g *Grid) SetSliding(idx int, offset, dir float64) {
	c := g.Cell(idx)
	if c == nil {
		return
	}
	c.Sliding = true
	c.Offset = core.ClampF(offset, g.lower, g.upper)
	c.Dir = 1
	if dir < 0 {
		c.Dir = -1
	}
}

// Slide advances every sliding tile by one step. A tile that passes a bound
// is clamped to it and reverses.
func (g *Grid) Slide() {
	for i := range g.Cells {
		c := &g.Cells[i]
		if !c.Sliding {
			continue
		}
		c.Offset += c.Dir * g.step
		switch {
		case c.Offset > g.upper:
			c.Offset = g.upper
			c.Dir = -1
		case c.Offset < g.lower:
			c.Offset = g.lower
			c.Dir = 1
		}
	}
}

// TileBox returns the volume of the tile at idx including its offset.
func (g *Grid) TileBox(idx int) core.Box {
	row, col := g.RowCol(idx)
	offset := 0.0
	if c := g.Cell(idx); c != nil {
		offset = c.Offset
	}
	center := mgl64.Vec3{
		(float64(row) + 0.5) * g.TileW,
		g.BaseY + offset,
		(float64(col) + 0.5) * g.TileL,
	}
	return core.NewBox(center, g.TileW, g.TileL, g.TileH)
}

// Surface returns the height of the top face of the tile at idx.
func (g *Grid) Surface(idx int) float64 {
	return g.TileBox(idx).Top()
}

// GroundLevel is the surface height of a tile at rest.
func (g *Grid) GroundLevel() float64 {
	return g.BaseY + g.TileH/2
}

// Extent returns the world size of the grid along x and z.
func (g *Grid) Extent() (x, z float64) {
	return float64(g.Rows) * g.TileW, float64(g.Cols) * g.TileL
}
